package catalog

import (
	"testing"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

func TestValidate(t *testing.T) {
	if err := validate(); err != nil {
		t.Fatalf("catalog tables are incomplete: %v", err)
	}
}

func TestCanonicalMood(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"happy", "joy"},
		{" Nervous ", "fear"},
		{"romantic", "love"},
		{"joy", "joy"},
		{"gibberish", "gibberish"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			if got := CanonicalMood(tt.in); got != tt.want {
				t.Errorf("CanonicalMood(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoods_ReturnsCopy(t *testing.T) {
	rows := Moods()
	rows[0].Keywords[0] = "mutated"
	if Moods()[0].Keywords[0] == "mutated" {
		t.Fatal("Moods exposed the underlying table")
	}
}

func TestMoods_KeywordsAreUnique(t *testing.T) {
	for _, row := range Moods() {
		seen := make(map[string]bool, len(row.Keywords))
		for _, kw := range row.Keywords {
			if seen[kw] {
				t.Errorf("%s: keyword %q listed twice", row.Mood, kw)
			}
			seen[kw] = true
		}
	}
	// calm keeps a single "peaceful"
	for _, row := range Moods() {
		if row.Mood == "calm" && len(row.Keywords) != 13 {
			t.Errorf("calm: expected 13 keywords, got %d", len(row.Keywords))
		}
	}
}

func TestMoods_DeclarationOrder(t *testing.T) {
	want := []string{"happy", "sad", "angry", "calm", "excited", "nervous", "romantic"}
	rows := Moods()
	if len(rows) != len(want) {
		t.Fatalf("expected %d moods, got %d", len(want), len(rows))
	}
	for i, row := range rows {
		if row.Mood != want[i] {
			t.Errorf("row %d: got %q, want %q", i, row.Mood, want[i])
		}
	}
}

func TestSoundtrack(t *testing.T) {
	st, ok := Soundtrack("happy")
	if !ok {
		t.Fatal("expected a soundtrack row for happy")
	}
	if len(st.Elements) == 0 || len(st.Artists) == 0 || len(st.SampleTracks) == 0 {
		t.Fatalf("incomplete soundtrack row: %+v", st)
	}

	def, ok := Soundtrack("unknown-mood")
	if ok {
		t.Fatal("expected unknown mood to miss the table")
	}
	if def.Mood != "Versatile" {
		t.Errorf("expected versatile default, got %q", def.Mood)
	}
}

func TestInsight_ToneDependsOnIntensity(t *testing.T) {
	_, _, low := Insight("joy", 3)
	_, _, high := Insight("joy", 9)
	if low == high {
		t.Fatalf("expected tone to change with intensity, got %q for both", low)
	}

	desc, themes, tone := Insight("bewildered", 4)
	if desc == "" || len(themes) == 0 || tone != "balanced and engaging" {
		t.Errorf("unexpected default insight: %q %v %q", desc, themes, tone)
	}
}

func TestColorScheme_UnknownGenreFallsBackToDrama(t *testing.T) {
	if got, want := ColorScheme(domain.Genre("Western")), ColorScheme(domain.GenreDrama); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestIntensityWord_Clamps(t *testing.T) {
	if got := IntensityWord(0); got != "very mild" {
		t.Errorf("IntensityWord(0) = %q", got)
	}
	if got := IntensityWord(42); got != "extreme" {
		t.Errorf("IntensityWord(42) = %q", got)
	}
}
