/*
Package dsl provides a fluent builder for constructing interaction records
programmatically instead of parsing them from a captured log file.

This is particularly useful for unit testing handlers, scripting short
replay sequences in Go, and building the synthetic preparation steps that
run before a log.

Example usage:

	package main

	import (
		"github.com/osvk/uireplay/pkg/dsl"
	)

	func main() {
		script := dsl.New()

		script.Add("click", "activate").
			TestID("main-sql")

		script.Add("input", "set-value").
			TestID("sql-manager-add-query-name").
			Value("report-1")

		records := script.Records()
		// ... feed records to a runtime engine or individual handlers
	}
*/
package dsl
