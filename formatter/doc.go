// Package formatter renders print arguments into the bytes handed to a
// stream handle.
//
// Arguments follow the shape of the classic print macros: the first
// argument, when it is a string, is a template in Go's fmt grammar and
// the remaining arguments are substituted into it. A template with no
// arguments is taken verbatim, so a literal "100%" prints as written.
// When the first argument is not a string there is no template and all
// operands are rendered the way fmt.Sprint renders them.
//
// For the line variants the trailing newline is appended to the rendered
// bytes, never written separately, so a whole line reaches the stream in
// a single write.
package formatter
