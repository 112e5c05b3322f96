package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/export"
	"github.com/ewilliams-labs/moodreel/internal/core/mood"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
	"github.com/ewilliams-labs/moodreel/internal/core/poster"
	"github.com/ewilliams-labs/moodreel/internal/core/soundtrack"
	"github.com/ewilliams-labs/moodreel/internal/core/story"
	"github.com/ewilliams-labs/moodreel/internal/worker"
)

// DefaultCapabilityTimeout bounds each call to an optional model backend.
const DefaultCapabilityTimeout = 30 * time.Second

// Notices attached to a generation when a capability falls back.
const (
	NoticeClassifierFallback = "Mood model unavailable, used keyword detection."
	NoticeGeneratorFallback  = "Story model unavailable, used a pre-written template."
	NoticeRendererFallback   = "Poster image unavailable, showing the description only."
	NoticeEndingsFallback    = "Story model unavailable, used pre-written endings."
)

// Options tune an Orchestrator. Zero values pick defaults.
type Options struct {
	Normalization     domain.Normalization
	MaxInputRunes     int
	CapabilityTimeout time.Duration
	Logger            *zerolog.Logger
	Now               func() time.Time
	// Pool runs independent model calls side by side. Nil runs them in turn.
	Pool *worker.Pool
}

// Orchestrator handles every user action: generation, versions,
// collaborators, endings and exports. It keeps the current generation in
// memory and delegates history to a SessionRepository.
type Orchestrator struct {
	classifier ports.MoodClassifier
	generator  ports.TextGenerator
	renderer   ports.PosterRenderer
	repo       ports.SessionRepository

	scorer   *mood.Scorer
	selector *story.Selector
	maxRunes int
	timeout  time.Duration
	log      zerolog.Logger
	now      func() time.Time
	pool     *worker.Pool

	mu      sync.RWMutex
	current *domain.Generation
}

// NewOrchestrator constructs an Orchestrator. Nil capabilities behave as
// unavailable.
func NewOrchestrator(classifier ports.MoodClassifier, generator ports.TextGenerator, renderer ports.PosterRenderer, repo ports.SessionRepository, opts Options) *Orchestrator {
	o := &Orchestrator{
		classifier: classifier,
		generator:  generator,
		renderer:   renderer,
		repo:       repo,
		scorer:     mood.NewScorer(opts.Normalization),
		selector:   story.NewSelector(),
		maxRunes:   opts.MaxInputRunes,
		timeout:    opts.CapabilityTimeout,
		log:        zerolog.Nop(),
		now:        opts.Now,
		pool:       opts.Pool,
	}
	if o.maxRunes <= 0 {
		o.maxRunes = mood.DefaultMaxInputRunes
	}
	if o.timeout <= 0 {
		o.timeout = DefaultCapabilityTimeout
	}
	if opts.Logger != nil {
		o.log = opts.Logger.With().Str("component", "orchestrator").Logger()
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}

// AnalyzeMood runs the mood step alone.
func (o *Orchestrator) AnalyzeMood(ctx context.Context, text string, baseIntensity int) (domain.MoodAnalysis, []string, error) {
	if err := mood.Validate(text, o.maxRunes); err != nil {
		return domain.MoodAnalysis{}, nil, fmt.Errorf("service: %w", err)
	}
	analysis, notices := o.analyze(ctx, text, baseIntensity)
	return analysis, notices, nil
}

// Generate runs the whole pipeline and replaces the current generation.
func (o *Orchestrator) Generate(ctx context.Context, req domain.GenerateRequest) (domain.Generation, error) {
	if err := mood.Validate(req.Text, o.maxRunes); err != nil {
		return domain.Generation{}, fmt.Errorf("service: %w", err)
	}

	seed := req.Seed
	if seed == 0 {
		seed = o.now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	analysis, notices := o.analyze(ctx, req.Text, req.Intensity)

	genre := analysis.Genre
	if g, ok := domain.ParseGenre(req.Genre); ok {
		genre = g
	}
	bucket := domain.ParseLength(req.Length)

	st, ok := o.generateStory(ctx, analysis, genre, bucket, req.CreativeMode, rng)
	if !ok {
		st = o.selector.Select(analysis.Primary, genre, bucket, rng)
		notices = append(notices, NoticeGeneratorFallback)
	}
	st.ID = uuid.NewString()

	art := domain.PosterArtifact{
		Description: poster.Describe(st.Title, genre, analysis.Primary),
		ColorScheme: poster.ColorSchemeFor(genre),
	}
	if img, err := o.renderPoster(ctx, poster.Spec(st), rng); err != nil {
		o.logFallback("renderer", err)
		notices = append(notices, NoticeRendererFallback)
	} else {
		art.Image = img
		art.HasImage = true
	}

	gen := domain.Generation{
		ID:         uuid.NewString(),
		Request:    req,
		Mood:       analysis,
		Story:      st,
		Poster:     art,
		Soundtrack: soundtrack.Recommend(analysis.Primary),
		Metrics:    story.ComputeMetrics(st.Script),
		Notices:    notices,
		CreatedAt:  o.now().UTC(),
	}

	o.mu.Lock()
	o.current = &gen
	o.mu.Unlock()

	o.log.Info().
		Str("generation_id", gen.ID).
		Str("mood", analysis.Primary).
		Str("genre", string(genre)).
		Str("method", st.Method).
		Int("intensity", analysis.Intensity).
		Msg("generation complete")
	return gen, nil
}

func (o *Orchestrator) analyze(ctx context.Context, text string, base int) (domain.MoodAnalysis, []string) {
	var notices []string
	method := domain.MethodModel
	signals, err := o.classify(ctx, mood.CleanForModel(text))
	if err == nil && len(signals) == 0 {
		err = errors.New("classifier returned no signals")
	}
	if err != nil {
		o.logFallback("classifier", err)
		signals = o.scorer.Score(text)
		method = domain.MethodKeyword
		notices = append(notices, NoticeClassifierFallback)
	} else {
		signals = mood.SortSignals(signals)
	}
	intensity := mood.EstimateIntensity(text, base)
	return mood.Analyze(signals, intensity, method), notices
}

func (o *Orchestrator) classify(ctx context.Context, text string) ([]domain.MoodSignal, error) {
	if o.classifier == nil {
		return nil, ports.ErrCapabilityUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.classifier.Classify(ctx, text)
}

func (o *Orchestrator) generateText(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	if o.generator == nil {
		return "", ports.ErrCapabilityUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return o.generator.Generate(ctx, prompt, params)
}

func (o *Orchestrator) renderPoster(ctx context.Context, spec domain.PosterSpec, rng *rand.Rand) ([]byte, error) {
	if o.renderer == nil {
		return nil, ports.ErrCapabilityUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	img, err := o.renderer.Render(ctx, spec, rng)
	if err == nil && len(img) == 0 {
		err = errors.New("renderer returned no image")
	}
	return img, err
}

func (o *Orchestrator) generateStory(ctx context.Context, analysis domain.MoodAnalysis, genre domain.Genre, bucket domain.LengthBucket, creative bool, rng *rand.Rand) (domain.StoryArtifact, bool) {
	raw, err := o.generateText(ctx, story.BuildPrompt(analysis, genre, bucket), story.ParamsFor(creative))
	if err != nil {
		o.logFallback("generator", err)
		return domain.StoryArtifact{}, false
	}
	st, ok := story.FromGenerated(raw, analysis.Primary, genre, bucket, rng)
	if !ok {
		o.log.Warn().Msg("generator returned no usable script, using template")
	}
	return st, ok
}

func (o *Orchestrator) logFallback(capability string, err error) {
	ev := o.log.Warn()
	if errors.Is(err, ports.ErrCapabilityUnavailable) {
		ev = o.log.Debug()
	}
	ev.Err(err).Str("capability", capability).Msg("falling back to deterministic path")
}

// Current returns the latest generation.
func (o *Orchestrator) Current() (domain.Generation, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.current == nil {
		return domain.Generation{}, domain.ErrNoCurrentStory
	}
	return *o.current, nil
}

// PosterImage returns the PNG of the current poster.
func (o *Orchestrator) PosterImage() ([]byte, error) {
	gen, err := o.Current()
	if err != nil {
		return nil, err
	}
	if !gen.Poster.HasImage {
		return nil, fmt.Errorf("service: poster image: %w", domain.ErrNotFound)
	}
	return gen.Poster.Image, nil
}

// SaveVersion appends the current story to the version history.
func (o *Orchestrator) SaveVersion(ctx context.Context) (domain.StoryVersion, error) {
	gen, err := o.Current()
	if err != nil {
		return domain.StoryVersion{}, err
	}
	v := domain.StoryVersion{
		ID:                uuid.NewString(),
		Story:             gen.Story,
		MoodLabel:         gen.Mood.Primary,
		Intensity:         gen.Mood.Intensity,
		PosterDescription: gen.Poster.Description,
		SavedAt:           o.now().UTC(),
	}
	saved, err := o.repo.SaveVersion(ctx, v)
	if err != nil {
		return domain.StoryVersion{}, fmt.Errorf("service: failed to save version: %w", err)
	}
	return saved, nil
}

// ListVersions returns the history oldest first.
func (o *Orchestrator) ListVersions(ctx context.Context) ([]domain.StoryVersion, error) {
	vs, err := o.repo.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list versions: %w", err)
	}
	return vs, nil
}

// GetVersion loads one saved version.
func (o *Orchestrator) GetVersion(ctx context.Context, id string) (domain.StoryVersion, error) {
	v, err := o.repo.GetVersion(ctx, id)
	if err != nil {
		return domain.StoryVersion{}, fmt.Errorf("service: failed to load version: %w", err)
	}
	return v, nil
}

// RestoreVersion makes a saved version the current generation. Derived
// records are rebuilt from the stored story; no poster image is kept.
func (o *Orchestrator) RestoreVersion(ctx context.Context, id string) (domain.Generation, error) {
	v, err := o.GetVersion(ctx, id)
	if err != nil {
		return domain.Generation{}, err
	}
	desc, themes, tone := catalog.Insight(v.MoodLabel, v.Intensity)
	gen := domain.Generation{
		ID: uuid.NewString(),
		Mood: domain.MoodAnalysis{
			Primary:   v.MoodLabel,
			Intensity: v.Intensity,
			Genre:     v.Story.Genre,
			Method:    v.Story.Method,
			Emoji:     catalog.Emoji(v.MoodLabel),
			Insights:  domain.MoodInsights{Description: desc, Themes: themes, Tone: tone},
		},
		Story: v.Story,
		Poster: domain.PosterArtifact{
			Description: v.PosterDescription,
			ColorScheme: poster.ColorSchemeFor(v.Story.Genre),
		},
		Soundtrack: soundtrack.Recommend(v.MoodLabel),
		Metrics:    story.ComputeMetrics(v.Story.Script),
		CreatedAt:  o.now().UTC(),
	}

	o.mu.Lock()
	o.current = &gen
	o.mu.Unlock()

	o.log.Info().Str("version_id", id).Int("version", v.Number).Msg("version restored")
	return gen, nil
}

// AddCollaborator validates and stores a collaborator.
func (o *Orchestrator) AddCollaborator(ctx context.Context, email, role string) (domain.Collaborator, error) {
	c, err := domain.NewCollaborator(email, role, o.now())
	if err != nil {
		return domain.Collaborator{}, fmt.Errorf("service: collaborator %q: %w", email, err)
	}
	if err := o.repo.AddCollaborator(ctx, c); err != nil {
		return domain.Collaborator{}, fmt.Errorf("service: failed to add collaborator: %w", err)
	}
	return c, nil
}

// RemoveCollaborator deletes a collaborator by email.
func (o *Orchestrator) RemoveCollaborator(ctx context.Context, email string) error {
	if err := o.repo.RemoveCollaborator(ctx, email); err != nil {
		return fmt.Errorf("service: failed to remove collaborator: %w", err)
	}
	return nil
}

// ListCollaborators returns collaborators in the order they were added.
func (o *Orchestrator) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	cs, err := o.repo.ListCollaborators(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list collaborators: %w", err)
	}
	return cs, nil
}

// AlternativeEndings writes count endings for the current story. The text
// model is asked first; any failure switches every ending to its template.
func (o *Orchestrator) AlternativeEndings(ctx context.Context, count int) ([]domain.Ending, []string, error) {
	gen, err := o.Current()
	if err != nil {
		return nil, nil, err
	}

	types := catalog.EndingTypes()[:story.ClampEndingCount(count)]
	params := story.ParamsFor(gen.Request.CreativeMode)

	type result struct {
		text string
		err  error
	}
	results := make([]result, len(types))

	var wg sync.WaitGroup
	for i, t := range types {
		i, t := i, t
		wg.Add(1)
		job := func() {
			defer wg.Done()
			raw, err := o.generateText(ctx, story.EndingPrompt(gen.Story, t), params)
			results[i] = result{text: story.CleanGenerated(raw), err: err}
		}
		if o.pool == nil || !o.pool.Submit(job) {
			job()
		}
	}
	wg.Wait()

	endings := make([]domain.Ending, 0, len(types))
	for i, r := range results {
		if r.err != nil || r.text == "" {
			if r.err != nil {
				o.logFallback("generator", r.err)
			}
			return story.Endings(gen.Story, len(types)), []string{NoticeEndingsFallback}, nil
		}
		endings = append(endings, domain.Ending{Type: types[i].Name, Content: r.text})
	}
	return endings, nil, nil
}

// Export renders the current generation in the named format.
func (o *Orchestrator) Export(format string) (export.Document, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return export.Document{}, fmt.Errorf("service: %w", err)
	}
	gen, err := o.Current()
	if err != nil {
		return export.Document{}, err
	}
	return export.Render(f, gen)
}
