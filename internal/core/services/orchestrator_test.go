package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
	"github.com/ewilliams-labs/moodreel/internal/worker"
)

const sampleScript = "SCENE 1:\nINT. BAKERY - DAY\nPRIYA (30s) drops a cake.\nPRIYA\nWhy does this always happen?"

// TestOrchestrator_Generate verifies capability dispatch and fallbacks.
func TestOrchestrator_Generate(t *testing.T) {
	tests := []struct {
		name        string
		classifier  ports.MoodClassifier
		generator   ports.TextGenerator
		renderer    ports.PosterRenderer
		wantMethod  string
		wantStory   string
		wantImage   bool
		wantNotices []string
	}{
		{
			name:        "no capabilities",
			wantMethod:  domain.MethodKeyword,
			wantStory:   domain.MethodTemplate,
			wantNotices: []string{NoticeClassifierFallback, NoticeGeneratorFallback, NoticeRendererFallback},
		},
		{
			name:       "all capabilities",
			classifier: &mockClassifier{signals: []domain.MoodSignal{{Label: "joy", Confidence: 0.9}}},
			generator:  &mockGenerator{text: sampleScript},
			renderer:   &mockRenderer{img: []byte{0x89, 'P', 'N', 'G'}},
			wantMethod: domain.MethodModel,
			wantStory:  domain.MethodModel,
			wantImage:  true,
		},
		{
			name:        "failing capabilities fall back",
			classifier:  &mockClassifier{err: errors.New("boom")},
			generator:   &mockGenerator{err: errors.New("boom")},
			renderer:    &mockRenderer{err: errors.New("boom")},
			wantMethod:  domain.MethodKeyword,
			wantStory:   domain.MethodTemplate,
			wantNotices: []string{NoticeClassifierFallback, NoticeGeneratorFallback, NoticeRendererFallback},
		},
		{
			name:        "empty model output uses template",
			classifier:  &mockClassifier{signals: []domain.MoodSignal{{Label: "joy", Confidence: 0.9}}},
			generator:   &mockGenerator{text: "Write a story\n\n"},
			renderer:    &mockRenderer{img: []byte{1}},
			wantMethod:  domain.MethodModel,
			wantStory:   domain.MethodTemplate,
			wantImage:   true,
			wantNotices: []string{NoticeGeneratorFallback},
		},
		{
			name:        "unavailable sentinel falls back",
			classifier:  &mockClassifier{err: ports.ErrCapabilityUnavailable},
			generator:   &mockGenerator{text: sampleScript},
			renderer:    &mockRenderer{img: []byte{1}},
			wantMethod:  domain.MethodKeyword,
			wantStory:   domain.MethodModel,
			wantImage:   true,
			wantNotices: []string{NoticeClassifierFallback},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrchestrator(tc.classifier, tc.generator, tc.renderer, newMockRepo(), Options{})
			gen, err := o.Generate(context.Background(), domain.GenerateRequest{Text: "I feel incredibly joyful today!", Intensity: 5, Seed: 1})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if gen.Mood.Method != tc.wantMethod {
				t.Errorf("mood method: got %q, want %q", gen.Mood.Method, tc.wantMethod)
			}
			if gen.Story.Method != tc.wantStory {
				t.Errorf("story method: got %q, want %q", gen.Story.Method, tc.wantStory)
			}
			if gen.Poster.HasImage != tc.wantImage {
				t.Errorf("has image: got %v, want %v", gen.Poster.HasImage, tc.wantImage)
			}
			if strings.Join(gen.Notices, "|") != strings.Join(tc.wantNotices, "|") {
				t.Errorf("notices: got %q, want %q", gen.Notices, tc.wantNotices)
			}
			if gen.ID == "" || gen.Story.ID == "" {
				t.Error("expected generation and story IDs")
			}
			if gen.Poster.Description == "" || gen.Soundtrack.Genre == "" || gen.Metrics.WordCount == 0 {
				t.Errorf("incomplete generation: %+v", gen)
			}
			if cur, err := o.Current(); err != nil || cur.ID != gen.ID {
				t.Errorf("current not replaced: %v", err)
			}
		})
	}
}

func TestOrchestrator_Generate_JoyfulInput(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})
	gen, err := o.Generate(context.Background(), domain.GenerateRequest{
		Text:      "I feel incredibly joyful and optimistic today!",
		Intensity: 5,
		Genre:     domain.AutoDetect,
		Length:    "Short (3-4 scenes)",
		Seed:      7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if gen.Mood.Primary != "happy" {
		t.Errorf("primary: got %q", gen.Mood.Primary)
	}
	if gen.Story.Genre != domain.GenreComedy {
		t.Errorf("genre: got %q", gen.Story.Genre)
	}
	if gen.Mood.Intensity != 8 {
		t.Errorf("intensity: got %d", gen.Mood.Intensity)
	}
	if !strings.HasPrefix(gen.Story.Script, "SCENE 1:") {
		t.Errorf("script: %q", gen.Story.Script)
	}
}

func TestOrchestrator_Generate_GenreOverride(t *testing.T) {
	o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})
	gen, err := o.Generate(context.Background(), domain.GenerateRequest{Text: "so happy", Genre: "Horror", Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if gen.Story.Genre != domain.GenreHorror {
		t.Errorf("genre: got %q", gen.Story.Genre)
	}
	if gen.Poster.ColorScheme.Background != (domain.RGB{R: 33, G: 33, B: 33}) {
		t.Errorf("poster palette should follow the override: %+v", gen.Poster.ColorScheme)
	}
}

func TestOrchestrator_Generate_SameSeedSameStory(t *testing.T) {
	req := domain.GenerateRequest{Text: "nervous but excited", Seed: 99}
	a, _ := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{}).Generate(context.Background(), req)
	b, _ := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{}).Generate(context.Background(), req)
	if a.Story.Title != b.Story.Title || a.Story.Tagline != b.Story.Tagline || a.Story.Script != b.Story.Script {
		t.Errorf("same seed differs:\n%+v\n%+v", a.Story, b.Story)
	}
}

func TestOrchestrator_Generate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace", text: "  \n "},
		{name: "too long", text: strings.Repeat("a", 501)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})
			_, err := o.Generate(context.Background(), domain.GenerateRequest{Text: tc.text})
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if _, err := o.Current(); !errors.Is(err, domain.ErrNoCurrentStory) {
				t.Errorf("invalid input must not set a current story: %v", err)
			}
		})
	}
}

func TestOrchestrator_CapabilityTimeout(t *testing.T) {
	o := NewOrchestrator(blockingClassifier{}, nil, nil, newMockRepo(), Options{CapabilityTimeout: 10 * time.Millisecond})
	start := time.Now()
	analysis, notices, err := o.AnalyzeMood(context.Background(), "so happy", 5)
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout not applied")
	}
	if analysis.Method != domain.MethodKeyword || len(notices) != 1 {
		t.Errorf("expected keyword fallback with notice, got %q %v", analysis.Method, notices)
	}
}

func TestOrchestrator_Versions(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	o := NewOrchestrator(nil, nil, nil, repo, Options{})

	if _, err := o.SaveVersion(ctx); !errors.Is(err, domain.ErrNoCurrentStory) {
		t.Fatalf("expected ErrNoCurrentStory, got %v", err)
	}

	first, err := o.Generate(ctx, domain.GenerateRequest{Text: "so sad and lonely", Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	v1, err := o.SaveVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v1.Number != 1 || v1.Story.Title != first.Story.Title || v1.MoodLabel != first.Mood.Primary {
		t.Errorf("unexpected version %+v", v1)
	}

	if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := o.SaveVersion(ctx); err != nil {
		t.Fatal(err)
	}

	vs, err := o.ListVersions(ctx)
	if err != nil || len(vs) != 2 {
		t.Fatalf("list: %v %d", err, len(vs))
	}

	restored, err := o.RestoreVersion(ctx, v1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Story.Script != first.Story.Script || restored.Mood.Primary != first.Mood.Primary {
		t.Error("restore did not bring back the saved story")
	}
	if cur, _ := o.Current(); cur.ID != restored.ID {
		t.Error("restored version is not current")
	}

	if _, err := o.RestoreVersion(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOrchestrator_Collaborators(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})

	if _, err := o.AddCollaborator(ctx, "not-an-email", "viewer"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	c, err := o.AddCollaborator(ctx, "Ana@Example.com", "viewer")
	if err != nil {
		t.Fatal(err)
	}
	if c.Email != "ana@example.com" || len(c.Permissions) != 2 {
		t.Errorf("unexpected collaborator %+v", c)
	}
	if _, err := o.AddCollaborator(ctx, "ana@example.com", "editor"); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if err := o.RemoveCollaborator(ctx, "ana@example.com"); err != nil {
		t.Fatal(err)
	}
	cs, _ := o.ListCollaborators(ctx)
	if len(cs) != 0 {
		t.Errorf("expected empty list, got %v", cs)
	}
}

func TestOrchestrator_AlternativeEndings(t *testing.T) {
	ctx := context.Background()

	t.Run("no current story", func(t *testing.T) {
		o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})
		if _, _, err := o.AlternativeEndings(ctx, 3); !errors.Is(err, domain.ErrNoCurrentStory) {
			t.Fatalf("expected ErrNoCurrentStory, got %v", err)
		}
	})

	t.Run("template fallback", func(t *testing.T) {
		o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})
		if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 1}); err != nil {
			t.Fatal(err)
		}
		endings, notices, err := o.AlternativeEndings(ctx, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(endings) != 2 || len(notices) != 1 {
			t.Errorf("got %d endings, notices %v", len(endings), notices)
		}
	})

	t.Run("model endings", func(t *testing.T) {
		gen := &mockGenerator{text: sampleScript}
		o := NewOrchestrator(nil, gen, nil, newMockRepo(), Options{})
		if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 1}); err != nil {
			t.Fatal(err)
		}
		gen.text = "And they all lived happily."
		endings, notices, err := o.AlternativeEndings(ctx, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(endings) != 3 || notices != nil {
			t.Fatalf("got %d endings, notices %v", len(endings), notices)
		}
		if endings[1].Type != "bittersweet" || endings[1].Content != "And they all lived happily." {
			t.Errorf("unexpected ending %+v", endings[1])
		}
	})

	t.Run("pooled model endings keep order", func(t *testing.T) {
		pool := worker.NewPool(8)
		pool.Start(3)
		defer pool.Stop()

		gen := &mockGenerator{text: sampleScript}
		o := NewOrchestrator(nil, gen, nil, newMockRepo(), Options{Pool: pool})
		if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 1}); err != nil {
			t.Fatal(err)
		}
		gen.mu.Lock()
		gen.text = "The lights come up."
		gen.prompts = nil
		gen.mu.Unlock()

		endings, notices, err := o.AlternativeEndings(ctx, 5)
		if err != nil {
			t.Fatal(err)
		}
		if len(endings) != 5 || notices != nil {
			t.Fatalf("got %d endings, notices %v", len(endings), notices)
		}
		for i, et := range catalog.EndingTypes() {
			if endings[i].Type != et.Name {
				t.Errorf("ending %d: got type %q, want %q", i, endings[i].Type, et.Name)
			}
		}
		if len(gen.prompts) != 5 {
			t.Errorf("expected 5 model calls, got %d", len(gen.prompts))
		}
	})

	t.Run("one failed ending falls back for all", func(t *testing.T) {
		gen := &mockGenerator{text: sampleScript}
		o := NewOrchestrator(nil, gen, nil, newMockRepo(), Options{})
		if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 1}); err != nil {
			t.Fatal(err)
		}
		gen.text = ""
		endings, notices, err := o.AlternativeEndings(ctx, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(endings) != 3 || len(notices) != 1 || notices[0] != NoticeEndingsFallback {
			t.Errorf("got %d endings, notices %v", len(endings), notices)
		}
	})
}

func TestOrchestrator_ExportAndPoster(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(nil, nil, nil, newMockRepo(), Options{})

	if _, err := o.Export("script"); !errors.Is(err, domain.ErrNoCurrentStory) {
		t.Fatalf("expected ErrNoCurrentStory, got %v", err)
	}
	if _, err := o.Generate(ctx, domain.GenerateRequest{Text: "so happy", Seed: 1}); err != nil {
		t.Fatal(err)
	}
	doc, err := o.Export("script")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(doc.FileName, "_script.txt") || !strings.Contains(string(doc.Body), "MOVIE SCRIPT:") {
		t.Errorf("unexpected document %s", doc.FileName)
	}
	if _, err := o.Export("pdf"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := o.PosterImage(); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound without a renderer, got %v", err)
	}
}

// --- Mocks ---

type mockClassifier struct {
	signals []domain.MoodSignal
	err     error
}

func (m *mockClassifier) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	return m.signals, m.err
}

type blockingClassifier struct{}

func (blockingClassifier) Classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type mockGenerator struct {
	text string
	err  error

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	return m.text, m.err
}

type mockRenderer struct {
	img []byte
	err error
}

func (m *mockRenderer) Render(ctx context.Context, spec domain.PosterSpec, rng *rand.Rand) ([]byte, error) {
	return m.img, m.err
}

// mockRepo keeps versions and collaborators in slices.
type mockRepo struct {
	versions      []domain.StoryVersion
	collaborators []domain.Collaborator
}

func newMockRepo() *mockRepo {
	return &mockRepo{}
}

func (m *mockRepo) SaveVersion(ctx context.Context, v domain.StoryVersion) (domain.StoryVersion, error) {
	v.Number = len(m.versions) + 1
	m.versions = append(m.versions, v)
	return v, nil
}

func (m *mockRepo) ListVersions(ctx context.Context) ([]domain.StoryVersion, error) {
	return append([]domain.StoryVersion(nil), m.versions...), nil
}

func (m *mockRepo) GetVersion(ctx context.Context, id string) (domain.StoryVersion, error) {
	for _, v := range m.versions {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.StoryVersion{}, domain.ErrNotFound
}

func (m *mockRepo) AddCollaborator(ctx context.Context, c domain.Collaborator) error {
	for _, existing := range m.collaborators {
		if existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	m.collaborators = append(m.collaborators, c)
	return nil
}

func (m *mockRepo) RemoveCollaborator(ctx context.Context, email string) error {
	for i, c := range m.collaborators {
		if c.Email == email {
			m.collaborators = append(m.collaborators[:i], m.collaborators[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockRepo) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	return append([]domain.Collaborator(nil), m.collaborators...), nil
}
