// Package catalog turns a project directory into reviewable input.
//
// Build performs one read-only traversal producing a rendered directory tree
// and a flat, lexically ordered list of candidate files filtered by an
// extension allow-list and a directory exclusion set. Budget then enforces an
// optional file-count limit, promoting architecturally central files (main,
// app, core, index) ahead of peripheral ones so they survive truncation.
package catalog
