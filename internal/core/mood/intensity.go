package mood

import (
	"math"
	"regexp"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
)

const (
	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5
)

var capsWord = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// EstimateIntensity adjusts base by keyword, punctuation, capitalisation and
// length modifiers, then rounds and clamps into [1,10]. A base outside that
// range is replaced with 5.
func EstimateIntensity(text string, base int) int {
	if base < MinIntensity || base > MaxIntensity {
		base = DefaultIntensity
	}
	lex := catalog.Intensity()
	lower := strings.ToLower(text)

	score := float64(base)
	for _, kw := range lex.High {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	for _, kw := range lex.Medium {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	for _, kw := range lex.Low {
		if strings.Contains(lower, kw) {
			score--
		}
	}

	score += 0.5 * float64(strings.Count(text, "!"))
	score += 0.3 * float64(len(capsWord.FindAllString(text, -1)))

	words := len(strings.Fields(text))
	switch {
	case words > 50:
		score++
	case words > 20:
		score += 0.5
	}

	return clamp(int(math.Round(score)))
}

func clamp(v int) int {
	if v < MinIntensity {
		return MinIntensity
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
