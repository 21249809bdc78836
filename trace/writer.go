package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sarchlab/llcrepl/mem"
)

// A Writer encodes accesses as a text trace. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one access.
func (w *Writer) Write(a mem.Access) error {
	if !a.Type.IsValid() {
		return fmt.Errorf("cannot write access type %d", int(a.Type))
	}

	_, err := fmt.Fprintf(w.w, "%c 0x%x 0x%x %d\n",
		a.Type.Mnemonic(), a.Address, a.PC, a.ThreadID)

	return err
}

// WriteAll appends every access.
func (w *Writer) WriteAll(accesses []mem.Access) error {
	for _, a := range accesses {
		if err := w.Write(a); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes the buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
