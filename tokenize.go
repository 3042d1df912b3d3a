package qdex

import "strings"

// isValidText reports whether text contains no byte below 0x20. Both
// document text and query text are rejected at this check before any
// tokenization happens.
func isValidText(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 {
			return false
		}
	}
	return true
}

// splitWords splits text on runs of literal ASCII space (0x20) only,
// discarding empty fields. It deliberately does not use strings.Fields,
// which also treats tab, newline and other Unicode whitespace as
// separators.
//
// The returned strings are slices of text's own backing array: Go strings
// are immutable, so a word token stays valid for as long as the document
// text that produced it is kept alive, with no copying or interning
// required.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
}
