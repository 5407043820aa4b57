/*
Package uireplay replays captured interaction logs against a running document
editor, re-executing each recorded user action through the editor's remote
debugging protocol.

It implements a fail-fast, single-pass replay: the whole log is parsed before
any action runs, every record is executed in file order, and the first failure
aborts the run with an exact position (seq and line).

# Concept

A capture extension inside the editor writes one JSON object per line
(interaction-log-*.jsonl) describing each user action: a sequence number, the
event and action kind, the target element, and the action payload. uireplay
reads that file and drives the live editor to the same end state, which makes
recorded sessions usable as regression tests for the editor's SQL plugin.

# Key Features

  - Deterministic Execution: records run strictly in file order, one at a time.
  - Fail-Fast: any malformed line, unsupported action, or handler failure
    aborts the replay immediately.
  - Dry Parse: validate an entire log without connecting to an editor.
  - Skip Policy: noisy events (raw keyboard events by default) are counted
    but not executed, extendable via YAML rules.
  - Hooks: callers can attach before/after callbacks to specific records.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/osvk/uireplay"
	)

	func main() {
		ctx := context.Background()

		rp, err := uireplay.New(ctx)
		if err != nil {
			log.Fatal(err)
		}
		defer rp.Close()

		summary, err := rp.Run(ctx, "interaction-log-2026-01-15.jsonl")
		if err != nil {
			log.Fatalf("replay aborted at seq %d: %v", summary.FailedSeq, err)
		}
		log.Printf("executed %d of %d records", summary.Executed, summary.Seen)
	}
*/
package uireplay
