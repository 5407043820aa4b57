package logparse

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/osvk/uireplay/pkg/domain"
)

// SplitSessions groups records into logical sessions at seq resets (a seq
// lower than the previous one suggests the capture was restarted).
//
// Analysis/debugging only: replay never consumes this split and always runs
// the full file in line order.
func SplitSessions(records []domain.ActionRecord) [][]domain.ActionRecord {
	var sessions [][]domain.ActionRecord
	var current []domain.ActionRecord
	lastSeq := -1

	for _, rec := range records {
		if len(current) > 0 && lastSeq >= 0 && rec.Seq < lastSeq {
			sessions = append(sessions, current)
			current = nil
		}
		current = append(current, rec)
		lastSeq = rec.Seq
	}
	if len(current) > 0 {
		sessions = append(sessions, current)
	}
	return sessions
}

// LatestLog returns the most recently modified interaction-log-*.jsonl under
// root, or "" when none exists.
func LatestLog(root string) string {
	matches, err := filepath.Glob(filepath.Join(root, "interaction-log-*.jsonl"))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Slice(matches, func(i, j int) bool {
		fi, errI := os.Stat(matches[i])
		fj, errJ := os.Stat(matches[j])
		if errI != nil || errJ != nil {
			return matches[i] > matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})
	return matches[0]
}
