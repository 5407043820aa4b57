/*
Package observability provides tools for monitoring a replay while it runs.

It includes a hook-based recorder that counts executed records per action
kind and measures per-record durations, useful for spotting which recorded
actions dominate a slow replay.
*/
package observability
