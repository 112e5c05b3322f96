// Package soundtrack recommends music for a detected mood.
package soundtrack

import (
	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Recommend returns the soundtrack row for a mood label. Aliases such as
// "happy" resolve to their canonical mood; unknown moods get the versatile row.
func Recommend(mood string) domain.SoundtrackRecommendation {
	rec, _ := catalog.Soundtrack(mood)
	return rec
}
