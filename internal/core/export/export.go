// Package export renders a generation into downloadable text formats.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// Format names an export flavour.
type Format string

const (
	FormatScript     Format = "script"
	FormatSummary    Format = "summary"
	FormatJSON       Format = "json"
	FormatScreenplay Format = "screenplay"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatScript, FormatSummary, FormatJSON, FormatScreenplay:
		return f, nil
	default:
		return "", fmt.Errorf("export: unknown format %q: %w", s, domain.ErrInvalidInput)
	}
}

// Document is a rendered export ready to be downloaded.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Render produces the document for a format.
func Render(f Format, gen domain.Generation) (Document, error) {
	switch f {
	case FormatScript:
		return Document{FileName: FileName(gen.Story.Title, "script.txt"), ContentType: "text/plain; charset=utf-8", Body: []byte(Script(gen))}, nil
	case FormatSummary:
		return Document{FileName: FileName(gen.Story.Title, "summary.txt"), ContentType: "text/plain; charset=utf-8", Body: []byte(ShareSummary(gen))}, nil
	case FormatScreenplay:
		return Document{FileName: FileName(gen.Story.Title, "screenplay.txt"), ContentType: "text/plain; charset=utf-8", Body: []byte(Screenplay(gen.Story))}, nil
	case FormatJSON:
		body, err := JSON(gen.Story)
		if err != nil {
			return Document{}, err
		}
		return Document{FileName: FileName(gen.Story.Title, "story.json"), ContentType: "application/json", Body: body}, nil
	default:
		return Document{}, fmt.Errorf("export: unknown format %q: %w", f, domain.ErrInvalidInput)
	}
}

var separator = strings.Repeat("-", 50)

// Script is the plain-text script download.
func Script(gen domain.Generation) string {
	st := gen.Story
	var b strings.Builder
	fmt.Fprintf(&b, "MOVIE SCRIPT: %s\n%s\n\n", st.Title, separator)
	fmt.Fprintf(&b, "TAGLINE: %s\nGENRE: %s\n\n", st.Tagline, st.Genre)
	fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", st.Summary)
	fmt.Fprintf(&b, "%s\nSCRIPT:\n%s\n\n%s\n\n", separator, separator, st.Script)
	fmt.Fprintf(&b, "%s\nGenerated by moodreel\n", separator)
	fmt.Fprintf(&b, "Emotion: %s (Intensity: %d/10)\n", gen.Mood.Primary, gen.Mood.Intensity)
	return b.String()
}

// ShareSummary is a short social-media friendly blurb.
func ShareSummary(gen domain.Generation) string {
	st := gen.Story
	var b strings.Builder
	b.WriteString("🎬 MY AI MOVIE 🎬\n\n")
	fmt.Fprintf(&b, "%s %s\n✨ %s\n\n", catalog.GenreIcon(st.Genre), st.Title, st.Tagline)
	fmt.Fprintf(&b, "🎭 Genre: %s\n", st.Genre)
	fmt.Fprintf(&b, "%s Mood: %s (%d/10)\n\n", gen.Mood.Emoji, gen.Mood.Primary, gen.Mood.Intensity)
	fmt.Fprintf(&b, "📖 %s\n\n", st.Summary)
	fmt.Fprintf(&b, "🎵 Soundtrack: %s\n\n", gen.Soundtrack.Genre)
	b.WriteString("Generated with moodreel ✨\n#MoodToMovie #AIStorytelling")
	return b.String()
}

// JSON encodes the story record with indentation.
func JSON(st domain.StoryArtifact) ([]byte, error) {
	body, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal story: %w", err)
	}
	return body, nil
}

// Screenplay wraps the script in FADE IN / FADE OUT / THE END.
func Screenplay(st domain.StoryArtifact) string {
	script := strings.TrimSpace(st.Script)
	if script == "" {
		script = "No story content"
	}
	return fmt.Sprintf("FADE IN:\n\n%s\n\nFADE OUT.\n\nTHE END\n", script)
}

// FileName builds a download name such as "The_Coffee_Chronicles_script.txt".
func FileName(title, suffix string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	return strings.ReplaceAll(title, " ", "_") + "_" + suffix
}
