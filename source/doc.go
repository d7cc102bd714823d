// Package source supplies text records to a pipeline.
//
// Lines reads a file line by line through an afero.Fs, so the same code runs
// against the operating system or an in-memory file system in tests. The file
// is opened eagerly: a missing or unreadable path fails when the source is
// created, never on the first pull.
//
// A read failure part-way through the file ends the stream with a
// RECORD_READ_FAILED error. Records are never skipped and the stream is
// never silently truncated.
package source
