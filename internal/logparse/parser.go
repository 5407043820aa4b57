// Package logparse turns interaction log files into validated ActionRecords.
//
// The log format is newline-delimited JSON, one record per non-blank line,
// UTF-8 (a leading BOM is tolerated, since the capture side writes one on
// Windows). Lines starting with '#' are comments. Parsing is eager and
// fail-fast: the whole file is validated before anything executes, and the
// first malformed line aborts with a MalformedRecordError carrying its
// 1-based line number.
package logparse

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/osvk/uireplay/pkg/domain"
)

// Field names the parser lifts out of the raw object. Everything else stays
// in the payload verbatim for handlers to interpret.
const (
	fieldSeq       = "seq"
	fieldEvent     = "event"
	fieldAction    = "action"
	fieldTimestamp = "ts"
	fieldTestID    = "testId"
	fieldSelector  = "selector"
	fieldElementID = "id"
)

// ReadFile parses an interaction log end to end. Blank lines and comment
// lines are skipped without counting as parse attempts; line numbers in
// errors always refer to the physical file line.
func ReadFile(path string) ([]domain.ActionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interaction log: %w", err)
	}
	defer f.Close()

	var records []domain.ActionRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read interaction log: %w", err)
	}
	return records, nil
}

// ParseLine parses a single non-blank log line. lineNo is the 1-based
// physical line number used in diagnostics.
func ParseLine(line string, lineNo int) (domain.ActionRecord, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return domain.ActionRecord{}, &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("invalid JSON: %v", err),
		}
	}
	return fromRaw(raw, lineNo)
}

func fromRaw(raw map[string]any, lineNo int) (domain.ActionRecord, error) {
	rec := domain.ActionRecord{Line: lineNo, Payload: make(map[string]any)}

	seq, err := intField(raw, fieldSeq, lineNo)
	if err != nil {
		return domain.ActionRecord{}, err
	}
	if seq < 0 {
		return domain.ActionRecord{}, &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("field %q must be non-negative, got %d", fieldSeq, seq),
		}
	}
	rec.Seq = seq

	if rec.Event, err = stringField(raw, fieldEvent, lineNo, true); err != nil {
		return domain.ActionRecord{}, err
	}
	if rec.Action, err = stringField(raw, fieldAction, lineNo, true); err != nil {
		return domain.ActionRecord{}, err
	}
	rec.Event = strings.ToLower(strings.TrimSpace(rec.Event))
	rec.Action = strings.ToLower(strings.TrimSpace(rec.Action))

	if rec.Timestamp, err = timestampField(raw, lineNo); err != nil {
		return domain.ActionRecord{}, err
	}

	if rec.Target.TestID, err = stringField(raw, fieldTestID, lineNo, false); err != nil {
		return domain.ActionRecord{}, err
	}
	if rec.Target.Selector, err = stringField(raw, fieldSelector, lineNo, false); err != nil {
		return domain.ActionRecord{}, err
	}
	if rec.Target.ElementID, err = stringField(raw, fieldElementID, lineNo, false); err != nil {
		return domain.ActionRecord{}, err
	}

	// Unknown extra fields are preserved verbatim: forward compatibility
	// with newer capture builds.
	for k, v := range raw {
		switch k {
		case fieldSeq, fieldEvent, fieldAction, fieldTimestamp,
			fieldTestID, fieldSelector, fieldElementID:
			continue
		}
		rec.Payload[k] = v
	}
	return rec, nil
}

func intField(raw map[string]any, key string, lineNo int) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("missing required field %q", key),
		}
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("field %q must be an integer, got %v", key, v),
		}
	}
	return int(f), nil
}

func stringField(raw map[string]any, key string, lineNo int, required bool) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		if required {
			return "", &domain.MalformedRecordError{
				Line:  lineNo,
				Cause: fmt.Sprintf("missing required field %q", key),
			}
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("field %q must be a string, got %T", key, v),
		}
	}
	return s, nil
}

// timestampField accepts the capture formats seen in the wild: epoch
// milliseconds or RFC 3339. The value is advisory; absence is fine.
func timestampField(raw map[string]any, lineNo int) (time.Time, error) {
	v, ok := raw[fieldTimestamp]
	if !ok || v == nil {
		return time.Time{}, nil
	}
	switch t := v.(type) {
	case float64:
		return time.UnixMilli(int64(t)), nil
	case string:
		ts, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, &domain.MalformedRecordError{
				Line:  lineNo,
				Cause: fmt.Sprintf("field %q is not RFC 3339: %v", fieldTimestamp, err),
			}
		}
		return ts, nil
	default:
		return time.Time{}, &domain.MalformedRecordError{
			Line:  lineNo,
			Cause: fmt.Sprintf("field %q must be a number or string, got %T", fieldTimestamp, v),
		}
	}
}
