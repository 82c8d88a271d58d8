package label

import (
	"strings"

	"golang.org/x/image/font"
)

// wrapToWidth greedily wraps text into lines that measure at most maxWidth
// pixels under face. Words longer than the width stand on their own line.
func wrapToWidth(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 2)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// capLines truncates lines to at most max entries, ellipsizing the last kept
// line when anything was cut.
func capLines(lines []string, max int, face font.Face, maxWidth int) []string {
	if len(lines) <= max {
		return lines
	}
	kept := append([]string(nil), lines[:max]...)
	kept[max-1] = ellipsize(kept[max-1], face, maxWidth)
	return kept
}

// ellipsize trims line until it fits maxWidth with a trailing "..." appended.
func ellipsize(line string, face font.Face, maxWidth int) string {
	runes := []rune(line)
	for len(runes) > 1 && font.MeasureString(face, string(runes)+"...").Ceil() > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
