// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs address rod and skupina groups in fragment URLs (e.g., "managers").
// This package handles normalization, accent removal, and character sanitization.
//
// # Collisions
//
// Distinct labels may produce the same slug ("Građa" and "Graa" both become
// "graa"). Callers that reverse a slug must decide which label wins.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches any character that is not a word char, whitespace, or hyphen.
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	// separators matches runs of whitespace and hyphens.
	separators = regexp.MustCompile(`[-\s]+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKD (decomposes accented chars: č → c + combining caron).
// 2. Drops every non-ASCII remnant (combining marks, đ, ß, CJK...).
// 3. Converts to lowercase.
// 4. Removes characters outside [A-Za-z0-9_], whitespace and hyphen.
// 5. Collapses whitespace/hyphen runs into one hyphen and trims hyphens.
func From(s string) string {
	// 1-2. Decompose and keep only ASCII
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isNonASCII)))
	result, _, _ := transform.String(t, s)

	// 3. Lowercase
	result = strings.ToLower(result)

	// 4. Strip punctuation and symbols
	result = disallowed.ReplaceAllString(result, "")

	// 5. Clean up hyphenation
	result = separators.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isNonASCII reports whether r lies outside the 7-bit ASCII range.
func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
