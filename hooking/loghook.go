package hooking

import (
	"fmt"
	"log"
)

type named interface {
	Name() string
}

// LogHook writes one line per hook invocation into a logger. When positions
// are given, invocations at any other position are ignored.
type LogHook struct {
	logger    *log.Logger
	positions map[*HookPos]bool
}

// NewLogHook returns a LogHook that writes into logger.
func NewLogHook(logger *log.Logger, positions ...*HookPos) *LogHook {
	h := new(LogHook)

	h.logger = logger
	h.positions = make(map[*HookPos]bool, len(positions))

	for _, pos := range positions {
		h.positions[pos] = true
	}

	return h
}

// Func writes the position and the item of the invocation into the logger.
func (h *LogHook) Func(ctx HookCtx) {
	if len(h.positions) > 0 && !h.positions[ctx.Pos] {
		return
	}

	domainName := "-"
	if d, ok := ctx.Domain.(named); ok {
		domainName = d.Name()
	}

	h.logger.Printf("%s, %s, %s", domainName, ctx.Pos.Name, describe(ctx.Item))
}

func describe(item any) string {
	switch v := item.(type) {
	case nil:
		return "-"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
