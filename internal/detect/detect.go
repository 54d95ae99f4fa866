// Copyright Security Ronin, 2026. All rights reserved.

package detect

import "strings"

// SampleSize bounds how many leading rows the detector scores. Detection
// is a prefix heuristic; larger datasets are deliberately not scanned in
// full.
const SampleSize = 100

// Scores counts, per column, how many sampled rows hold a value that
// classifies as a grid-reference candidate. The table width is fixed by
// the first row; extra fields in later rows are ignored.
func Scores(rows [][]string) []int {
	if len(rows) == 0 {
		return nil
	}

	scores := make([]int, len(rows[0]))
	sample := rows
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	for _, row := range sample {
		for i, field := range row {
			if i >= len(scores) {
				break
			}
			if LooksLikeCoordinate(strings.TrimSpace(field)) {
				scores[i]++
			}
		}
	}
	return scores
}

// Column returns the index of the column most likely to hold grid
// references. Ties break to the lowest index. The boolean is false when
// there are no rows or no column scored at all; callers must treat that
// as fatal rather than defaulting to column 0.
func Column(rows [][]string) (int, bool) {
	best, bestScore := 0, 0
	for i, score := range Scores(rows) {
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return best, true
}
