// Package catalog owns every static lookup table: mood keywords, genre
// mappings, colour schemes, story templates, titles, taglines and soundtracks.
// Tables are unexported and handed out as copies so callers cannot mutate them.
package catalog

import (
	"fmt"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

func init() {
	if err := validate(); err != nil {
		panic(err)
	}
}

// validate checks the totality guarantees the selectors rely on.
func validate() error {
	if _, ok := storyTemplates[TemplateKey(DefaultTemplateMood, DefaultTemplateGenre)]; !ok {
		return fmt.Errorf("catalog: default story template %q missing", TemplateKey(DefaultTemplateMood, DefaultTemplateGenre))
	}
	for key, scenes := range storyTemplates {
		if len(scenes) == 0 {
			return fmt.Errorf("catalog: story template %q has no scenes", key)
		}
	}
	for _, g := range domain.AllGenres() {
		if _, ok := colorSchemes[g]; !ok {
			return fmt.Errorf("catalog: no colour scheme for %s", g)
		}
		if _, ok := posterTemplates[g]; !ok {
			return fmt.Errorf("catalog: no poster template for %s", g)
		}
		if len(titlePatterns[g]) == 0 {
			return fmt.Errorf("catalog: no title patterns for %s", g)
		}
		if len(taglines[g]) == 0 {
			return fmt.Errorf("catalog: no taglines for %s", g)
		}
		if _, ok := summaryPatterns[g]; !ok {
			return fmt.Errorf("catalog: no summary pattern for %s", g)
		}
		if _, ok := genreProfiles[g]; !ok {
			return fmt.Errorf("catalog: no genre profile for %s", g)
		}
	}
	for _, g := range directGenres {
		if !g.Valid() {
			return fmt.Errorf("catalog: direct genre table holds unknown genre %q", g)
		}
	}
	return nil
}
