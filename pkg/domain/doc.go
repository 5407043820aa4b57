/*
Package domain contains the core domain models of the replay engine.

It defines the fundamental entities of a replay run and the error taxonomy,
kept pure and free of I/O following Hexagonal Architecture principles.

# Key Entities

  - ActionRecord: One logged interaction, parsed from a line of the log.
  - ActionKey: The (event, action) pair handlers are dispatched on.
  - HookTable: Before/after callbacks bound to record sequence numbers.
  - RunSummary: Seen/executed/skipped counts and the terminal status of a run.
  - Locator: A driver-agnostic description of a UI element.
*/
package domain
