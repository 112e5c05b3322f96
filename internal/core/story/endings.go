package story

import (
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// DefaultEndingCount is used when the caller asks for zero endings.
const DefaultEndingCount = 3

// ClampEndingCount keeps count within the available ending types.
func ClampEndingCount(count int) int {
	if count <= 0 {
		return DefaultEndingCount
	}
	if n := len(catalog.EndingTypes()); count > n {
		return n
	}
	return count
}

// Endings fills the first count ending templates for a story.
func Endings(st domain.StoryArtifact, count int) []domain.Ending {
	types := catalog.EndingTypes()[:ClampEndingCount(count)]
	character := MainCharacter(st.Script)
	out := make([]domain.Ending, 0, len(types))
	for _, t := range types {
		out = append(out, domain.Ending{Type: t.Name, Content: FillEnding(t, st, character)})
	}
	return out
}

// FillEnding renders one ending template.
func FillEnding(t catalog.EndingType, st domain.StoryArtifact, character string) string {
	r := strings.NewReplacer(
		"{character}", character,
		"{title}", st.Title,
		"{genre}", strings.ToLower(string(st.Genre)),
	)
	return upperFirst(r.Replace(t.Template))
}
