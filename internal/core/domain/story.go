package domain

import (
	"strings"
	"time"
)

// LengthBucket controls how many scenes a template story contains.
type LengthBucket string

const (
	LengthShort  LengthBucket = "Short"
	LengthMedium LengthBucket = "Medium"
	LengthLong   LengthBucket = "Long"
)

// ParseLength maps labels such as "Long (7-8 scenes)" to a bucket.
// Unrecognised labels fall back to Short.
func ParseLength(s string) LengthBucket {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "short"):
		return LengthShort
	case strings.Contains(lower, "medium"):
		return LengthMedium
	case strings.Contains(lower, "long"):
		return LengthLong
	default:
		return LengthShort
	}
}

// SceneCount is the number of scenes requested for the bucket.
func (b LengthBucket) SceneCount() int {
	switch b {
	case LengthMedium:
		return 6
	case LengthLong:
		return 8
	default:
		return 4
	}
}

// StoryArtifact is produced once per generation and never mutated afterwards.
type StoryArtifact struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Tagline string       `json:"tagline"`
	Summary string       `json:"summary"`
	Script  string       `json:"script"`
	Genre   Genre        `json:"genre"`
	Mood    string       `json:"mood"`
	Length  LengthBucket `json:"length"`
	Method  string       `json:"method"`
}

// Metrics are derived from a finished script.
type Metrics struct {
	WordCount                  int     `json:"word_count"`
	LineCount                  int     `json:"line_count"`
	EstimatedScenes            int     `json:"estimated_scenes"`
	DialogueLines              int     `json:"dialogue_lines"`
	ActionLines                int     `json:"action_lines"`
	DialogueRatio              float64 `json:"dialogue_ratio"`
	ReadingTimeMinutes         float64 `json:"reading_time_minutes"`
	EstimatedScreenTimeMinutes float64 `json:"estimated_screen_time_minutes"`
}

// Ending is one alternative conclusion for the current story.
type Ending struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// GenerateRequest carries everything the user supplies for one generation.
type GenerateRequest struct {
	Text         string `json:"text"`
	Intensity    int    `json:"intensity"`
	Genre        string `json:"genre"`
	Length       string `json:"length"`
	CreativeMode bool   `json:"creative_mode"`
	Seed         int64  `json:"seed,omitempty"`
}

// Generation is the full result of one "Generate" action.
type Generation struct {
	ID         string                   `json:"id"`
	Request    GenerateRequest          `json:"request"`
	Mood       MoodAnalysis             `json:"mood"`
	Story      StoryArtifact            `json:"story"`
	Poster     PosterArtifact           `json:"poster"`
	Soundtrack SoundtrackRecommendation `json:"soundtrack"`
	Metrics    Metrics                  `json:"metrics"`
	Notices    []string                 `json:"notices,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}

// GenerationParams tune a text generation backend.
type GenerationParams struct {
	MaxTokens         int     `json:"max_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	TopK              int     `json:"top_k"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}
