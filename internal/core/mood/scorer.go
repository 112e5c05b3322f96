// Package mood turns free text into an emotion profile, an intensity and a genre.
package mood

import (
	"sort"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Scorer ranks moods by keyword and emoji substring hits.
type Scorer struct {
	normalization domain.Normalization
	table         []catalog.MoodKeywords
}

// NewScorer builds a scorer over the catalog keyword table.
// An empty normalization means domain.NormalizeByTotal.
func NewScorer(n domain.Normalization) *Scorer {
	if n == "" {
		n = domain.NormalizeByTotal
	}
	return &Scorer{normalization: n, table: catalog.Moods()}
}

// Normalization reports the strategy the scorer was built with.
func (s *Scorer) Normalization() domain.Normalization {
	return s.normalization
}

// Score returns moods with at least one hit, highest confidence first.
// Ties keep table order. Input with no hits yields a single neutral signal.
func (s *Scorer) Score(text string) []domain.MoodSignal {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return neutral()
	}

	counts := make([]int, len(s.table))
	total := 0
	for i, row := range s.table {
		for _, kw := range row.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				counts[i]++
			}
		}
		total += counts[i]
	}
	if total == 0 {
		return neutral()
	}

	signals := make([]domain.MoodSignal, 0, len(s.table))
	for i, row := range s.table {
		if counts[i] == 0 {
			continue
		}
		var conf float64
		switch s.normalization {
		case domain.NormalizeByListLength:
			conf = float64(counts[i]) / float64(len(row.Keywords))
		default:
			conf = float64(counts[i]) / float64(total)
		}
		signals = append(signals, domain.MoodSignal{Label: row.Mood, Confidence: conf})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Confidence > signals[j].Confidence
	})
	return signals
}

func neutral() []domain.MoodSignal {
	return []domain.MoodSignal{{Label: domain.NeutralMood, Confidence: domain.NeutralConfidence}}
}

// SortSignals orders classifier output the way Score orders its own:
// descending confidence, stable for ties.
func SortSignals(signals []domain.MoodSignal) []domain.MoodSignal {
	out := append([]domain.MoodSignal(nil), signals...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}
