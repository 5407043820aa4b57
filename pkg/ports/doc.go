/*
Package ports defines the driven ports (interfaces) for the replay engine.

These interfaces decouple the orchestrator and the action handlers from the
concrete browser automation backend, so the same replay logic runs against a
live DevTools session or an in-memory scripted driver in tests.

# Key Interfaces

  - Driver: The single exclusively-owned handle to the driven application.
  - Handler: The unit of logic that executes one ActionRecord.
*/
package ports
