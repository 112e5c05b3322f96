package domain

import (
	"fmt"
	"strings"
)

// NeutralMood is the label reported when nothing in the input carries a mood.
const NeutralMood = "neutral"

// NeutralConfidence is the confidence attached to the neutral fallback signal.
const NeutralConfidence = 0.5

// MoodSignal is one ranked entry of an emotion profile.
type MoodSignal struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Normalization selects how raw keyword counts become confidences.
type Normalization string

const (
	// NormalizeByTotal divides each count by the sum of all counts.
	NormalizeByTotal Normalization = "by_total"
	// NormalizeByListLength divides each count by the size of that mood's keyword list.
	NormalizeByListLength Normalization = "by_list_length"
)

// ParseNormalization maps a config string to a Normalization. Empty means NormalizeByTotal.
func ParseNormalization(s string) (Normalization, error) {
	switch Normalization(strings.ToLower(strings.TrimSpace(s))) {
	case "", NormalizeByTotal:
		return NormalizeByTotal, nil
	case NormalizeByListLength:
		return NormalizeByListLength, nil
	default:
		return "", fmt.Errorf("domain: unknown normalization %q", s)
	}
}

// MoodInsights describes a mood in narrative terms.
type MoodInsights struct {
	Description string   `json:"description"`
	Themes      []string `json:"themes"`
	Tone        string   `json:"tone"`
}

// ComplexEmotion reports whether the top two signals are close enough to read as a blend.
type ComplexEmotion struct {
	IsComplex       bool    `json:"is_complex"`
	Primary         string  `json:"primary_emotion"`
	Secondary       string  `json:"secondary_emotion,omitempty"`
	Mix             string  `json:"emotion_mix,omitempty"`
	ComplexityScore float64 `json:"complexity_score,omitempty"`
}

// MoodAnalysis is the mood summary record handed to the presentation layer.
type MoodAnalysis struct {
	Primary    string         `json:"primary_mood"`
	Confidence float64        `json:"confidence"`
	Intensity  int            `json:"intensity"`
	Genre      Genre          `json:"suggested_genre"`
	Signals    []MoodSignal   `json:"signals"`
	Method     string         `json:"method"`
	Emoji      string         `json:"emoji"`
	Insights   MoodInsights   `json:"insights"`
	Complex    ComplexEmotion `json:"complex"`
}

// Detection methods recorded on MoodAnalysis.Method.
const (
	MethodKeyword  = "keyword"
	MethodModel    = "model"
	MethodTemplate = "template"
)
