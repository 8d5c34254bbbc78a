// Scout is a CLI that reviews an entire project through one conversational
// LLM session.
//
// It walks a project directory, then drives a four-stage review over a single
// accumulating chat transcript: project description intake, directory
// structure analysis, a per-file review of every qualifying source file, and
// a final project-wide summary that can draw on everything said before.
//
// Usage:
//
//	scout analyze <dir>                       # review a project
//	scout analyze <dir> --limit 10            # review the 10 most central files
//	scout analyze <dir> --description "..."   # supply a project description
//	scout config init                         # write a default config file
//	scout models list                         # list known providers and models
//
// See https://github.com/dshills/scout for full documentation.
package main
