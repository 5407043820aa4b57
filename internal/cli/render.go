package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/osvk/uireplay/pkg/domain"
)

// RenderSummary writes the human-facing RunSummary, coloring the status when
// the terminal supports it.
func RenderSummary(w io.Writer, s *domain.RunSummary) {
	out := termenv.NewOutput(w)

	status := out.String(string(s.Status))
	if s.Completed() {
		status = status.Foreground(out.Color("2")).Bold()
	} else {
		status = status.Foreground(out.Color("1")).Bold()
	}

	fmt.Fprintf(w, "replay %s: seen=%d executed=%d skipped=%d\n",
		status, s.Seen, s.Executed, s.Skipped)

	if s.Completed() {
		return
	}
	var malformed *domain.MalformedRecordError
	switch {
	case errors.As(s.Err, &malformed):
		fmt.Fprintf(w, "failed at line %d: %v\n", malformed.Line, s.Err)
	case s.FailedSeq == domain.SeqInjection:
		fmt.Fprintf(w, "failed during pre-step injection: %v\n", s.Err)
	default:
		fmt.Fprintf(w, "failed at seq=%d (line %d): %v\n", s.FailedSeq, s.FailedLine, s.Err)
	}
}
