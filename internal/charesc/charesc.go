/*
File    : go-mix/internal/charesc/charesc.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package charesc decodes the single-character escape sequences used by
// DT character literals. String literals defer escape decoding to a
// later stage and never call into this package.
package charesc

// Decode maps an escape body byte (the character immediately following
// the backslash in a '\x' character literal) to its decoded value.
// Unrecognized bodies, including '0', decode to NUL — matching the
// source's default case.
func Decode(body byte) byte {
	switch body {
	case '\'':
		return '\''
	case '"':
		return '"'
	case '\\':
		return '\\'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	default:
		return 0
	}
}
