package story

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

func TestSelector_ResolveKey(t *testing.T) {
	tests := []struct {
		name  string
		mood  string
		genre domain.Genre
		want  string
	}{
		{name: "exact match", mood: "joy", genre: domain.GenreComedy, want: "joy_comedy"},
		{name: "alias resolves", mood: "happy", genre: domain.GenreComedy, want: "joy_comedy"},
		{name: "falls back to drama", mood: "sadness", genre: domain.GenreSciFi, want: "sadness_drama"},
		{name: "falls back to default", mood: "boredom", genre: domain.GenreHorror, want: "joy_comedy"},
		{name: "sci-fi key", mood: "curiosity", genre: domain.GenreSciFi, want: "curiosity_sci-fi"},
	}

	s := NewSelector()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ResolveKey(tt.mood, tt.genre); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_EveryMoodGenrePairResolves(t *testing.T) {
	s := NewSelector()
	moods := []string{"neutral", "unknown"}
	for _, m := range catalog.Moods() {
		moods = append(moods, m.Mood)
	}
	for _, m := range moods {
		for _, g := range domain.AllGenres() {
			st := s.Select(m, g, domain.LengthMedium, rand.New(rand.NewSource(1)))
			if st.Script == "" || st.Title == "" || st.Tagline == "" || st.Summary == "" {
				t.Errorf("%s/%s: incomplete artifact %+v", m, g, st)
			}
		}
	}
}

func TestSelector_SceneCount(t *testing.T) {
	tests := []struct {
		name   string
		mood   string
		genre  domain.Genre
		bucket domain.LengthBucket
		want   int
	}{
		{name: "short takes four", mood: "joy", genre: domain.GenreComedy, bucket: domain.LengthShort, want: 4},
		{name: "long is capped by template size", mood: "joy", genre: domain.GenreComedy, bucket: domain.LengthLong, want: 4},
		{name: "medium on six-scene template", mood: "excitement", genre: domain.GenreAdventure, bucket: domain.LengthMedium, want: 6},
		{name: "short on six-scene template", mood: "excitement", genre: domain.GenreAdventure, bucket: domain.LengthShort, want: 4},
	}

	s := NewSelector()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			st := s.Select(tt.mood, tt.genre, tt.bucket, rand.New(rand.NewSource(7)))
			if got := strings.Count(st.Script, "SCENE "); got != tt.want {
				t.Errorf("got %d scenes, want %d", got, tt.want)
			}
			if !strings.HasPrefix(st.Script, "SCENE 1:\n") {
				t.Errorf("script should start with SCENE 1, got %q", st.Script[:20])
			}
			if strings.Contains(st.Script, "SCENE 5:") && tt.want == 4 {
				t.Error("scenes must not be duplicated to fill the bucket")
			}
		})
	}
}

func TestSelector_SameSeedSameArtifact(t *testing.T) {
	s := NewSelector()
	a := s.Select("happy", domain.GenreComedy, domain.LengthShort, rand.New(rand.NewSource(42)))
	b := s.Select("happy", domain.GenreComedy, domain.LengthShort, rand.New(rand.NewSource(42)))
	if a != b {
		t.Fatalf("same seed produced different artifacts:\n%+v\n%+v", a, b)
	}
	if a.Method != domain.MethodTemplate {
		t.Errorf("method: got %q", a.Method)
	}
}

func TestSelector_InvalidGenreUsesDrama(t *testing.T) {
	st := NewSelector().Select("sadness", domain.Genre("Western"), domain.LengthShort, rand.New(rand.NewSource(1)))
	if st.Genre != domain.GenreDrama {
		t.Errorf("genre: got %q", st.Genre)
	}
}

func TestMainCharacter(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "introduced with age", script: "INT. CAFE - DAY\n\nSAM (20s) waits.", want: "Sam"},
		{name: "titled name", script: "EXT. LAB - NIGHT\n\nDR. OKAFOR (40s) runs.", want: "Dr. Okafor"},
		{name: "cue line", script: "SCENE 1:\nINT. ROOM\n\nJUNE\nHello.", want: "June"},
		{name: "nobody", script: "Rain falls on an empty street.", want: "the protagonist"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := MainCharacter(tt.script); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary_UsesCharacterAndTheme(t *testing.T) {
	got := Summary("SAM (20s) trips.", domain.GenreComedy, []string{"friendship"})
	if !strings.HasPrefix(got, "Sam learns") || !strings.Contains(got, "friendship") {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestTitle_FillsPlaceholders(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		title := Title("SCENE 1:\nMaya finds Harbor lights.", domain.GenreComedy, "joy", rand.New(rand.NewSource(seed)))
		if strings.ContainsAny(title, "{}") {
			t.Fatalf("seed %d left a placeholder: %q", seed, title)
		}
	}
}

func TestMeaningfulWords_SkipsStopWords(t *testing.T) {
	got := meaningfulWords("The Cat And The Hat With Maya")
	want := []string{"Cat", "Hat", "Maya"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComputeMetrics(t *testing.T) {
	t.Run("blank is zero", func(t *testing.T) {
		if got := ComputeMetrics("  \n "); got != (domain.Metrics{}) {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("counts", func(t *testing.T) {
		script := "SCENE 1:\nINT. KITCHEN - DAY\n\nSAM\nHello there.\n\nSam waves."
		got := ComputeMetrics(script)
		if got.LineCount != 7 {
			t.Errorf("lines: got %d", got.LineCount)
		}
		if got.EstimatedScenes != 2 {
			t.Errorf("scenes: got %d", got.EstimatedScenes)
		}
		// "SCENE 1:" and "SAM" are both short upper-case lines
		if got.DialogueLines != 2 {
			t.Errorf("dialogue: got %d", got.DialogueLines)
		}
		if got.ActionLines != 2 {
			t.Errorf("action: got %d", got.ActionLines)
		}
		if got.WordCount != 11 {
			t.Errorf("words: got %d", got.WordCount)
		}
		if got.DialogueRatio != 0.4 {
			t.Errorf("ratio: got %v", got.DialogueRatio)
		}
	})

	t.Run("scene header counts as dialogue", func(t *testing.T) {
		got := ComputeMetrics("SCENE 1:\nSAM\nHello there.")
		if got.DialogueLines != 2 {
			t.Errorf("dialogue: got %d", got.DialogueLines)
		}
		if got.ActionLines != 1 {
			t.Errorf("action: got %d", got.ActionLines)
		}
		if math.Abs(got.DialogueRatio-2.0/3.0) > 1e-9 {
			t.Errorf("ratio: got %v", got.DialogueRatio)
		}
	})

	t.Run("scene minimum is one", func(t *testing.T) {
		if got := ComputeMetrics("just some prose"); got.EstimatedScenes != 1 {
			t.Errorf("scenes: got %d", got.EstimatedScenes)
		}
	})

	t.Run("reading time", func(t *testing.T) {
		got := ComputeMetrics(strings.Repeat("word ", 500))
		if got.ReadingTimeMinutes != 2.0 {
			t.Errorf("reading: got %v", got.ReadingTimeMinutes)
		}
		if got.EstimatedScreenTimeMinutes != 0 {
			t.Errorf("screen: got %v", got.EstimatedScreenTimeMinutes)
		}
	})
}

func TestFormatScript(t *testing.T) {
	got := FormatScript("Sam walks in.")
	for _, want := range []string{"FADE IN", "SCENE 1", "FADE OUT"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	if FormatScript("") != "No script available." {
		t.Error("empty script should yield placeholder")
	}
	already := "FADE IN\n\nINT. ROOM\n\nFADE OUT"
	if FormatScript(already) != already {
		t.Errorf("formatted script changed: %q", FormatScript(already))
	}
}

func TestCleanGenerated(t *testing.T) {
	in := "Write a comedy screenplay.\nSTORY REQUIREMENTS: mood joy\n\nSCENE 1:\n  SAM (20s) laughs.  \n"
	if got, want := CleanGenerated(in), "SCENE 1:\n\nSAM (20s) laughs."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnhance(t *testing.T) {
	tests := []struct {
		name   string
		genre  domain.Genre
		input  string
		want   string
		absent string
	}{
		{name: "comedy beat", genre: domain.GenreComedy, input: "SAM\nWhat are you doing?", want: "What are you doing?\n(beat)"},
		{name: "thriller pause", genre: domain.GenreThriller, input: "Footsteps on the stairs.", want: "Footsteps on the stairs.\n(pause, listening)"},
		{name: "drama untouched", genre: domain.GenreDrama, input: "What now?", absent: "(beat)"},
		{name: "scene header upper-cased", genre: domain.GenreDrama, input: "INT. kitchen - day", want: "INT. KITCHEN - DAY"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Enhance(tt.input, tt.genre)
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
			if tt.absent != "" && strings.Contains(got, tt.absent) {
				t.Errorf("got %q, must not contain %q", got, tt.absent)
			}
		})
	}
	if Enhance("", domain.GenreComedy) != "" {
		t.Error("empty input should stay empty")
	}
}

func TestParamsFor(t *testing.T) {
	normal, creative := ParamsFor(false), ParamsFor(true)
	if normal.MaxTokens != 600 || normal.Temperature != 0.8 {
		t.Errorf("normal: %+v", normal)
	}
	if creative.MaxTokens != 800 || creative.Temperature != 0.9 {
		t.Errorf("creative: %+v", creative)
	}
	if normal.TopP != creative.TopP || normal.TopK != creative.TopK || normal.RepetitionPenalty != creative.RepetitionPenalty {
		t.Error("creative mode should only change max tokens and temperature")
	}
}

func TestBuildPrompt(t *testing.T) {
	a := domain.MoodAnalysis{Primary: "joy", Intensity: 7, Insights: domain.MoodInsights{Tone: "uplifting"}}
	got := BuildPrompt(a, domain.GenreComedy, domain.LengthMedium)
	for _, want := range []string{"comedy", "6 scenes", "joy", "7/10", "uplifting"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
	if CleanGenerated(got) == got {
		t.Error("prompt echo lines should be removable by CleanGenerated")
	}
}

func TestEndings(t *testing.T) {
	st := domain.StoryArtifact{Title: "Dark Truth", Genre: domain.GenreThriller, Script: "NOOR (30s) runs."}
	tests := []struct {
		count int
		want  int
	}{
		{count: 0, want: 3},
		{count: 2, want: 2},
		{count: 9, want: 5},
	}
	for _, tt := range tests {
		got := Endings(st, tt.count)
		if len(got) != tt.want {
			t.Errorf("count %d: got %d endings", tt.count, len(got))
			continue
		}
		if got[0].Type != "happy" || !strings.Contains(got[0].Content, "Noor") {
			t.Errorf("first ending: %+v", got[0])
		}
		for _, e := range got {
			if strings.ContainsAny(e.Content, "{}") {
				t.Errorf("unfilled template: %q", e.Content)
			}
		}
	}
}

func TestFromGenerated(t *testing.T) {
	raw := "Write a comedy screenplay.\nSCENE 1:\nINT. BAKERY - DAY\nPRIYA (30s) drops a cake.\nPRIYA\nWhy does this always happen?"
	st, ok := FromGenerated(raw, "joy", domain.GenreComedy, domain.LengthShort, rand.New(rand.NewSource(1)))
	if !ok {
		t.Fatal("expected usable output")
	}
	if st.Method != domain.MethodModel {
		t.Errorf("method: got %q", st.Method)
	}
	if strings.Contains(st.Script, "Write a") {
		t.Error("prompt echo survived")
	}
	if !strings.Contains(st.Script, "(beat)") {
		t.Errorf("comedy beat missing:\n%s", st.Script)
	}
	if !strings.HasPrefix(st.Summary, "Priya") {
		t.Errorf("summary: %q", st.Summary)
	}

	if _, ok := FromGenerated("Write a story\n\n  ", "joy", domain.GenreComedy, domain.LengthShort, rand.New(rand.NewSource(1))); ok {
		t.Error("echo-only output should be rejected")
	}
}
