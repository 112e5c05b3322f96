package story

import (
	"math"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

const (
	readingWordsPerMinute = 250
	// One screenplay page runs about 55 lines and about one minute on screen.
	linesPerScreenMinute = 55
)

// ComputeMetrics derives counts and time estimates from a script. Blank input
// returns the zero value.
func ComputeMetrics(script string) domain.Metrics {
	if strings.TrimSpace(script) == "" {
		return domain.Metrics{}
	}

	words := len(strings.Fields(script))
	lines := strings.Split(script, "\n")

	var scenes, dialogue, action, nonBlank int
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		nonBlank++

		upper := strings.ToUpper(line)
		heading := strings.HasPrefix(upper, "INT.") || strings.HasPrefix(upper, "EXT.")
		if strings.Contains(upper, "SCENE") || heading {
			scenes++
		}

		upperLine := isUpperLine(line)
		// Short upper-case lines count as cues, scene headers included.
		if upperLine && len(strings.Fields(line)) <= 3 {
			dialogue++
		}
		if !upperLine && !isMarker(line) {
			action++
		}
	}
	if scenes < 1 {
		scenes = 1
	}

	var ratio float64
	if nonBlank > 0 {
		ratio = float64(dialogue) / float64(nonBlank)
	}

	return domain.Metrics{
		WordCount:                  words,
		LineCount:                  len(lines),
		EstimatedScenes:            scenes,
		DialogueLines:              dialogue,
		ActionLines:                action,
		DialogueRatio:              ratio,
		ReadingTimeMinutes:         round1(float64(words) / readingWordsPerMinute),
		EstimatedScreenTimeMinutes: round1(float64(nonBlank) / linesPerScreenMinute),
	}
}

func isMarker(line string) bool {
	return strings.HasPrefix(line, "SCENE") || strings.HasPrefix(line, "INT.") || strings.HasPrefix(line, "EXT.")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
