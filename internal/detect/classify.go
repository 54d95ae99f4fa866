// Copyright Security Ronin, 2026. All rights reserved.

// Package detect decides which column of a tabular dataset holds MGRS grid
// references. Classification is a cheap structural pre-filter; anything it
// lets through is still validated by the grid parser at conversion time.
package detect

import (
	"regexp"
	"strings"
)

// coordPattern matches the structural shape of an MGRS reference as a
// word-bounded substring: zone digits, a latitude-band letter (I and O are
// never assigned), the two-letter 100km square, and 2-10 easting/northing
// digits. Whitespace between the groups is tolerated.
var coordPattern = regexp.MustCompile(`(?i)\b\d{1,2}\s*[C-HJ-NP-X]\s*[A-Z]{2}\s*\d{2,10}\b`)

// minReferenceLen is the shortest plausible compact grid reference.
const minReferenceLen = 7

// LooksLikeCoordinate reports whether value plausibly holds an MGRS grid
// reference. False positives are acceptable; they only steer column
// detection and are re-checked before conversion.
func LooksLikeCoordinate(value string) bool {
	if len(strings.TrimSpace(value)) < minReferenceLen {
		return false
	}
	return coordPattern.MatchString(value)
}
