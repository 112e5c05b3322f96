// Package poster writes poster descriptions and draws procedural poster images.
package poster

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// ColorSchemeFor returns the palette for a genre.
func ColorSchemeFor(genre domain.Genre) domain.ColorScheme {
	return catalog.ColorScheme(genre)
}

// Describe writes the textual poster concept for a story.
func Describe(title string, genre domain.Genre, mood string) string {
	tmpl := catalog.Poster(genre)
	pm := catalog.PosterMoodFor(mood)
	cs := ColorSchemeFor(genre)

	var b strings.Builder
	fmt.Fprintf(&b, "Movie poster for %q, a %s.\n", title, strings.ToLower(string(genre)))
	fmt.Fprintf(&b, "Layout: %s. %s.\n", tmpl.Layout, pm.Layout)
	fmt.Fprintf(&b, "Visual elements: %s.\n", strings.Join(tmpl.VisualElements, ", "))
	fmt.Fprintf(&b, "Atmosphere: %s.\n", pm.Elements)
	fmt.Fprintf(&b, "Palette: %s (primary %s, secondary %s, accent %s).\n",
		strings.Join(pm.Colors, ", "), cs.Primary.Hex(), cs.Secondary.Hex(), cs.Accent.Hex())
	fmt.Fprintf(&b, "Story: %s.", pm.Story)
	return b.String()
}

// Spec assembles renderer input for a finished story.
func Spec(st domain.StoryArtifact) domain.PosterSpec {
	return domain.PosterSpec{
		Title:       st.Title,
		Tagline:     st.Tagline,
		Genre:       st.Genre,
		Mood:        st.Mood,
		ColorScheme: ColorSchemeFor(st.Genre),
	}
}
