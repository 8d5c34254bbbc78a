// Package output renders run reports in text, JSON, and markdown formats.
// Every format emits the stage replies in stage order, each tagged with its
// originating stage or file.
package output
