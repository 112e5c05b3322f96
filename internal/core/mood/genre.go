package mood

import (
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// MapGenre resolves a mood label to a genre: exact table hit first, then the
// ordered substring groups, then Drama. It never fails.
func MapGenre(label string) domain.Genre {
	if g, ok := catalog.DirectGenre(label); ok {
		return g
	}
	lower := strings.ToLower(label)
	if lower == "" {
		return domain.DefaultGenre
	}
	for _, group := range catalog.GenrePatterns() {
		for _, w := range group.Words {
			if strings.Contains(lower, w) {
				return group.Genre
			}
		}
	}
	return domain.DefaultGenre
}
