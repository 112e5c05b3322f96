package story

import (
	"math/rand"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// FromGenerated turns raw model output into a story artifact. It reports
// false when nothing usable is left after cleaning.
func FromGenerated(raw, mood string, genre domain.Genre, bucket domain.LengthBucket, rng *rand.Rand) (domain.StoryArtifact, bool) {
	script := Enhance(CleanGenerated(raw), genre)
	if script == "" {
		return domain.StoryArtifact{}, false
	}
	return domain.StoryArtifact{
		Title:   Title(script, genre, mood, rng),
		Tagline: Tagline(genre, rng),
		Summary: Summary(script, genre, catalog.Themes(mood)),
		Script:  script,
		Genre:   genre,
		Mood:    mood,
		Length:  bucket,
		Method:  domain.MethodModel,
	}, true
}
