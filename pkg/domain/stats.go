package domain

import (
	"fmt"
	"strings"
)

// Sum returns the arithmetic sum of the given faces.
func Sum(faces []int) int {
	total := 0
	for _, f := range faces {
		total += f
	}
	return total
}

// Frequencies maps each face value to the number of dice currently showing
// it. Faces with a zero count are omitted.
func Frequencies(faces []int) map[int]int {
	freq := make(map[int]int, MaxFace)
	for _, f := range faces {
		if f >= MinFace && f <= MaxFace {
			freq[f]++
		}
	}
	return freq
}

// FormatFrequencies renders a frequency map as a display string, e.g.
// "2x⚀ | 1x⚃". An empty map renders as "no results yet".
func FormatFrequencies(freq map[int]int) string {
	parts := make([]string, 0, MaxFace)
	for face := MinFace; face <= MaxFace; face++ {
		if n := freq[face]; n > 0 {
			parts = append(parts, fmt.Sprintf("%dx%s", n, FaceGlyph(face)))
		}
	}
	if len(parts) == 0 {
		return "no results yet"
	}
	return strings.Join(parts, " | ")
}
