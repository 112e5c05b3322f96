// Package story builds scripts, titles, taglines, summaries and metrics,
// either from the template catalog or by post-processing model output.
package story

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Selector picks pre-authored scenes for a (mood, genre, length) request.
type Selector struct{}

// NewSelector returns a template selector.
func NewSelector() *Selector {
	return &Selector{}
}

// ResolveKey walks the template fallback chain: (mood, genre), then
// (mood, Drama), then (joy, Comedy).
func (s *Selector) ResolveKey(mood string, genre domain.Genre) string {
	canon := catalog.CanonicalMood(mood)
	candidates := []string{
		catalog.TemplateKey(canon, genre),
		catalog.TemplateKey(canon, domain.GenreDrama),
		catalog.TemplateKey(catalog.DefaultTemplateMood, catalog.DefaultTemplateGenre),
	}
	for _, key := range candidates {
		if _, ok := catalog.StoryScenes(key); ok {
			return key
		}
	}
	// catalog init guarantees the last candidate exists
	panic(fmt.Sprintf("story: no template for %q", candidates[len(candidates)-1]))
}

// Select builds a complete story artifact. All randomness comes from rng, so
// the same inputs and seed always produce the same artifact.
func (s *Selector) Select(mood string, genre domain.Genre, bucket domain.LengthBucket, rng *rand.Rand) domain.StoryArtifact {
	if !genre.Valid() {
		genre = domain.DefaultGenre
	}
	key := s.ResolveKey(mood, genre)
	scenes, _ := catalog.StoryScenes(key)

	n := bucket.SceneCount()
	if n > len(scenes) {
		n = len(scenes)
	}
	script := JoinScenes(scenes[:n])

	return domain.StoryArtifact{
		Title:   Title(script, genre, mood, rng),
		Tagline: Tagline(genre, rng),
		Summary: Summary(script, genre, catalog.Themes(mood)),
		Script:  script,
		Genre:   genre,
		Mood:    mood,
		Length:  bucket,
		Method:  domain.MethodTemplate,
	}
}

// JoinScenes numbers scenes as "SCENE n:" blocks separated by blank lines.
func JoinScenes(scenes []string) string {
	parts := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		parts = append(parts, fmt.Sprintf("SCENE %d:\n%s", i+1, scene))
	}
	return strings.Join(parts, "\n\n")
}
