package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodreel/internal/app"
	"github.com/ewilliams-labs/moodreel/internal/config"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

type generateOptions struct {
	intensity int
	genre     string
	length    string
	creative  bool
	seed      int64
	export    string
	out       string
	poster    string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [mood description]",
		Short: "Generate one movie concept and print it",
		Example: `  moodreel generate "I feel incredibly joyful today"
  moodreel generate --genre Thriller --length long --seed 7 "nervous but excited"
  moodreel generate --export screenplay --out reel.txt --poster reel.png "so sad and lonely"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			return runGenerate(cmd, cfg, strings.Join(args, " "), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.intensity, "intensity", 5, "slider intensity 1-10 used as the base")
	f.StringVar(&opts.genre, "genre", domain.AutoDetect, "genre override")
	f.StringVar(&opts.length, "length", string(domain.LengthShort), "story length: short, medium or long")
	f.BoolVar(&opts.creative, "creative", false, "looser sampling for model generation")
	f.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 picks one)")
	f.StringVar(&opts.export, "export", "", "print an export instead: script, summary, json or screenplay")
	f.StringVar(&opts.out, "out", "", "write output to this file instead of stdout")
	f.StringVar(&opts.poster, "poster", "", "write the poster PNG to this file")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, text string, opts generateOptions) error {
	ctx := cmd.Context()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	gen, err := a.Service.Generate(ctx, domain.GenerateRequest{
		Text:         text,
		Intensity:    opts.intensity,
		Genre:        opts.genre,
		Length:       opts.length,
		CreativeMode: opts.creative,
		Seed:         opts.seed,
	})
	if err != nil {
		return err
	}

	var body []byte
	if opts.export != "" {
		doc, err := a.Service.Export(opts.export)
		if err != nil {
			return err
		}
		body = doc.Body
	} else {
		var b strings.Builder
		printConcept(&b, gen)
		body = []byte(b.String())
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
	} else if _, err := cmd.OutOrStdout().Write(body); err != nil {
		return err
	}

	if opts.poster != "" {
		img, err := a.Service.PosterImage()
		if err != nil {
			return fmt.Errorf("poster: %w", err)
		}
		if err := os.WriteFile(opts.poster, img, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.poster, err)
		}
	}
	return nil
}

func printConcept(w io.Writer, gen domain.Generation) {
	st := gen.Story
	m := gen.Mood

	fmt.Fprintf(w, "%s %s (%s, %d/10, %s)\n", m.Emoji, m.Primary, st.Genre, m.Intensity, m.Method)
	fmt.Fprintf(w, "%s\n\n", m.Insights.Description)
	fmt.Fprintf(w, "🎬 %s\n✨ %s\n\n%s\n\n", st.Title, st.Tagline, st.Summary)
	fmt.Fprintf(w, "%s\n\n", st.Script)
	fmt.Fprintf(w, "🖼  Poster\n%s\n\n", gen.Poster.Description)
	fmt.Fprintf(w, "🎵 %s (%s)\n", gen.Soundtrack.Genre, gen.Soundtrack.Mood)
	fmt.Fprintf(w, "   Artists: %s\n", strings.Join(gen.Soundtrack.Artists, ", "))
	fmt.Fprintf(w, "   Tracks: %s\n\n", strings.Join(gen.Soundtrack.SampleTracks, ", "))

	mt := gen.Metrics
	fmt.Fprintf(w, "📊 %d words, %d scenes, %.1f min read, %.1f min on screen\n",
		mt.WordCount, mt.EstimatedScenes, mt.ReadingTimeMinutes, mt.EstimatedScreenTimeMinutes)

	for _, n := range gen.Notices {
		fmt.Fprintf(w, "note: %s\n", n)
	}
}
