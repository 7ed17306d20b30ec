// Package directive maps documentation directive names to pure handler
// functions and expands directive occurrences found in reStructuredText and
// MyST Markdown sources.
//
// Handlers never depend on a documentation framework: they receive an
// Invocation and return fragment nodes. Recoverable failures (a missing data
// file, an unknown class, a malformed invocation) are converted by the Table
// into a located error SystemMessage that replaces the directive output, so
// one bad directive does not abort the whole build. Any other error aborts.
package directive
