package view

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Wrap breaks text into lines of at most width visible runes, splitting on
// spaces. Words longer than the width are hard-cut.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{""}
	}

	var lines []string
	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > width {
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		if len(lines) == 0 {
			lines = append(lines, word)
			continue
		}
		last := lines[len(lines)-1]
		if utf8.RuneCountInString(last)+1+utf8.RuneCountInString(word) <= width {
			lines[len(lines)-1] = last + " " + word
		} else {
			lines = append(lines, word)
		}
	}
	return lines
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
