// Copyright Security Ronin, 2026. All rights reserved.

package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"compact reference", "33TWN1234567890", true},
		{"space separated groups", "33T WN 12345 67890", true},
		{"lowercase", "4q fj 12345 67890", true},
		{"single digit zone", "4QFJ1234", true},
		{"minimum digits", "33TWN12", true},
		{"embedded in text", "position 33TWN4820 reported", true},
		{"surrounding whitespace", "  33TWN1234567890  ", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"below minimum length", "4QFJ12", false},
		{"plain text", "not-a-coord", false},
		{"band letter I", "33IWN1234567890", false},
		{"band letter O", "33OWN1234567890", false},
		{"band below C", "33BWN1234567890", false},
		{"band above X", "33YWN1234567890", false},
		{"decimal number", "12345.6789", false},
		{"too many digits", "33TWN123456789012", false},
		{"street address", "12 Elm Street", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeCoordinate(tt.value))
		})
	}
}
