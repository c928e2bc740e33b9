// Package filter implements the line filter at the heart of testfilter. It
// drops every line of a test listing that contains one of the patterns of an
// [ExclusionSet] and passes all other lines through unchanged and in order.
//
// The package is built around [LineFilter], which evaluates each line
// independently, and [Run], which wires it between an input stream and an
// output stream.
package filter
