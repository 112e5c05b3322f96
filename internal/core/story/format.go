package story

import (
	"strings"
	"unicode"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// FormatScript makes sure a script has a scene header and FADE IN / FADE OUT.
func FormatScript(script string) string {
	formatted := strings.TrimSpace(script)
	if formatted == "" {
		return "No script available."
	}
	upper := strings.ToUpper(formatted)
	if !strings.Contains(upper, "SCENE") && !strings.Contains(upper, "INT.") && !strings.Contains(upper, "EXT.") {
		formatted = "SCENE 1\n" + formatted
	}
	if !strings.Contains(upper, "FADE IN") {
		formatted = "FADE IN\n\n" + formatted
	}
	if !strings.Contains(upper, "FADE OUT") {
		formatted += "\n\nFADE OUT"
	}
	return formatted
}

var promptEchoPrefixes = []string{"Write a", "STORY REQUIREMENTS"}

// CleanGenerated strips blank lines and prompt echoes from model output and
// separates the remaining lines with blank lines.
func CleanGenerated(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		echo := false
		for _, p := range promptEchoPrefixes {
			if strings.HasPrefix(line, p) {
				echo = true
				break
			}
		}
		if !echo {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n\n")
}

// Enhance normalises scene headings and character cues in model output and
// adds genre beats: "(beat)" after Comedy questions, "(pause, listening)"
// after Thriller tension lines. Empty input yields an empty string.
func Enhance(script string, genre domain.Genre) string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "SCENE"), strings.HasPrefix(line, "INT."), strings.HasPrefix(line, "EXT."):
			lines = append(lines, "", strings.ToUpper(line))
		case isUpperLine(line) && len(strings.Fields(line)) <= 3 && isAlphaSpace(line):
			lines = append(lines, "", line)
		default:
			lines = append(lines, line)
		}
	}
	out := strings.TrimLeft(strings.Join(lines, "\n"), "\n")

	switch genre {
	case domain.GenreComedy:
		out = addBeats(out, "(beat)", func(l string) bool {
			lower := strings.ToLower(l)
			return strings.Contains(l, "?") && containsAny(lower, "what", "how", "why")
		})
	case domain.GenreThriller:
		out = addBeats(out, "(pause, listening)", func(l string) bool {
			return containsAny(strings.ToLower(l), "footsteps", "shadow", "noise", "door")
		})
	}
	return out
}

func addBeats(script, beat string, match func(string) bool) string {
	var out []string
	for _, line := range strings.Split(script, "\n") {
		out = append(out, line)
		if match(line) {
			out = append(out, beat)
		}
	}
	return strings.Join(out, "\n")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// isUpperLine mirrors a "fully upper-case" check: at least one cased letter
// and no lower-case letters.
func isUpperLine(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isAlphaSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
