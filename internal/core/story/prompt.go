package story

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// ParamsFor returns generation settings. Creative mode allows longer and
// less predictable output.
func ParamsFor(creative bool) domain.GenerationParams {
	p := domain.GenerationParams{
		MaxTokens:         600,
		Temperature:       0.8,
		TopP:              0.95,
		TopK:              50,
		RepetitionPenalty: 1.1,
	}
	if creative {
		p.MaxTokens = 800
		p.Temperature = 0.9
	}
	return p
}

// BuildPrompt describes the wanted screenplay to a text model.
func BuildPrompt(analysis domain.MoodAnalysis, genre domain.Genre, bucket domain.LengthBucket) string {
	profile := catalog.Profile(genre)
	tone := analysis.Insights.Tone
	if tone == "" {
		tone = profile.Tone
	}
	themes := analysis.Insights.Themes
	if len(themes) == 0 {
		themes = profile.Themes
	}
	if len(themes) > 3 {
		themes = themes[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s screenplay in %d scenes.\n", strings.ToLower(string(genre)), bucket.SceneCount())
	fmt.Fprintf(&b, "STORY REQUIREMENTS: mood %s at intensity %d/10, tone %s.\n", analysis.Primary, analysis.Intensity, tone)
	fmt.Fprintf(&b, "Themes: %s.\n", strings.Join(themes, ", "))
	fmt.Fprintf(&b, "Include: %s.\n", strings.Join(profile.Elements, ", "))
	b.WriteString("Start each scene with a line like \"SCENE 1:\" followed by INT. or EXT. and a location. ")
	b.WriteString("Introduce characters in capitals with their age, for example \"MAYA (20s)\". ")
	b.WriteString("Write character cues on their own line in capitals before their dialogue.\n")
	return b.String()
}

// EndingPrompt asks a text model for one alternative ending.
func EndingPrompt(st domain.StoryArtifact, ending catalog.EndingType) string {
	return fmt.Sprintf("Write a %s ending for the %s story %q in under 120 words. Style: %s.\n\nStory so far:\n%s\n",
		ending.Name, strings.ToLower(string(st.Genre)), st.Title, ending.Style, st.Summary)
}
