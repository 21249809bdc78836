package replacement

import (
	"errors"
	"fmt"
	"strings"
)

// Bypass is the way index a policy returns to ask the cache not to allocate
// the missing line. The built-in policies never return it.
const Bypass = -1

// ErrUnknownKind is returned when a policy name cannot be parsed.
var ErrUnknownKind = errors.New("unknown replacement policy")

// Kind is the top-level replacement policy configured for an engine.
type Kind int

// The supported kinds.
const (
	KindLRU Kind = iota
	KindRandom
	KindAdaptive
)

func (k Kind) String() string {
	switch k {
	case KindLRU:
		return "LRU"
	case KindRandom:
		return "RANDOM"
	case KindAdaptive:
		return "ADAPTIVE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a policy name into a Kind. Matching is case
// insensitive; "switch" is accepted as an alias of "adaptive".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lru":
		return KindLRU, nil
	case "random":
		return KindRandom, nil
	case "adaptive", "switch":
		return KindAdaptive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindLRU, KindRandom, KindAdaptive}
}

// SubPolicy is one of the two disciplines the adaptive policy switches
// between.
type SubPolicy int

// The sub-policies of the adaptive policy.
const (
	SubPolicyRecency SubPolicy = iota
	SubPolicySweep
)

func (p SubPolicy) String() string {
	switch p {
	case SubPolicyRecency:
		return "RECENCY"
	case SubPolicySweep:
		return "SWEEP"
	default:
		return fmt.Sprintf("SubPolicy(%d)", int(p))
	}
}

func (p SubPolicy) other() SubPolicy {
	switch p {
	case SubPolicyRecency:
		return SubPolicySweep
	case SubPolicySweep:
		return SubPolicyRecency
	default:
		panic(fmt.Sprintf("unknown sub-policy %d", int(p)))
	}
}
