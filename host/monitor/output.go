package monitor

import (
	"fmt"
	"io"

	"pruadc/core"
)

// Output formats
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// NewWriterHandler returns a handler printing one line per sample.
func NewWriterHandler(w io.Writer, format string) (BatchHandler, error) {
	switch format {
	case FormatText, "":
		return func(seq uint64, b core.Batch) error {
			_, err := fmt.Fprintf(w, "batch %d: %v\n", seq, b)
			return err
		}, nil
	case FormatCSV:
		return func(seq uint64, b core.Batch) error {
			for i, s := range b {
				n := seq*core.BatchSize + uint64(i)
				if _, err := fmt.Fprintf(w, "%d,%d\n", n, s); err != nil {
					return err
				}
			}
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
