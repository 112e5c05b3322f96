package poster

import (
	"bytes"
	"context"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

func TestDescribe(t *testing.T) {
	got := Describe("The Coffee Chronicles", domain.GenreComedy, "happy")
	for _, want := range []string{"The Coffee Chronicles", "comedy", "Warm yellows", "#ff6b6b", "Layout:"} {
		if !strings.Contains(got, want) {
			t.Errorf("description missing %q:\n%s", want, got)
		}
	}
}

func TestDescribe_UnknownMoodUsesCalm(t *testing.T) {
	got := Describe("Quiet", domain.GenreDrama, "boredom")
	if !strings.Contains(got, "Soft pastels") {
		t.Errorf("expected calm palette names:\n%s", got)
	}
}

func TestColorSchemeFor_UnknownGenre(t *testing.T) {
	if ColorSchemeFor(domain.Genre("Western")) != ColorSchemeFor(domain.GenreDrama) {
		t.Error("unknown genre should use the drama palette")
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()
	for _, g := range domain.AllGenres() {
		g := g
		t.Run(string(g), func(t *testing.T) {
			spec := domain.PosterSpec{
				Title:       "A Rather Long Title That Has To Wrap Across Lines",
				Tagline:     "Every journey begins with a single step",
				Genre:       g,
				Mood:        "joy",
				ColorScheme: ColorSchemeFor(g),
			}
			data, err := r.Render(context.Background(), spec, rand.New(rand.NewSource(3)))
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
				t.Errorf("size: got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderer_SameSeedSameImage(t *testing.T) {
	r := NewRenderer()
	spec := domain.PosterSpec{Title: "Fear Street", Genre: domain.GenreHorror, ColorScheme: ColorSchemeFor(domain.GenreHorror)}
	a, _ := r.Render(context.Background(), spec, rand.New(rand.NewSource(9)))
	b, _ := r.Render(context.Background(), spec, rand.New(rand.NewSource(9)))
	if !bytes.Equal(a, b) {
		t.Error("same seed should render identical bytes")
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRenderer().Render(ctx, domain.PosterSpec{}, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestWrap(t *testing.T) {
	lines := wrap(strings.Repeat("word ", 40), 100)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, l := range lines {
		if textWidth(l) > 100 {
			t.Errorf("line too wide: %q", l)
		}
	}
	if wrap("", 100) != nil {
		t.Error("empty input should give no lines")
	}
}
