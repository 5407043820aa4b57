package cli

import (
	"fmt"
	"io"

	"github.com/osvk/uireplay/internal/logparse"
)

// Sessions prints the logical session layout of a log: groups split at seq
// resets. Analysis only; replay always runs the full file.
func Sessions(w io.Writer, logPath string) error {
	path, err := resolveLogPath(logPath)
	if err != nil {
		return err
	}
	records, err := logparse.ReadFile(path)
	if err != nil {
		return err
	}

	sessions := logparse.SplitSessions(records)
	fmt.Fprintf(w, "%s: %d records, %d session(s)\n", path, len(records), len(sessions))
	for i, s := range sessions {
		first, last := s[0], s[len(s)-1]
		fmt.Fprintf(w, "  session %d: lines %d-%d, seq %d-%d, %d records\n",
			i+1, first.Line, last.Line, first.Seq, last.Seq, len(s))
	}
	return nil
}
