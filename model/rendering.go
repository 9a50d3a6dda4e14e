package model

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// TextRenderer prints snapshots as rows of 0/1 statuses
type TextRenderer struct {
	Out io.Writer
}

// Display writes one line per row, statuses separated by spaces, each line
// followed by a blank line
func (r *TextRenderer) Display(s Snapshot) error {
	for row := range s.Height() {
		for col := range s.Width() {
			if _, err := fmt.Fprintf(r.Out, "%d ", s.Status(row, col)); err != nil {
				return errors.Wrap(err, "[TextRenderer.Display] failed to write cell")
			}
		}
		if _, err := fmt.Fprint(r.Out, "\n\n"); err != nil {
			return errors.Wrap(err, "[TextRenderer.Display] failed to write row end")
		}
	}
	return nil
}
