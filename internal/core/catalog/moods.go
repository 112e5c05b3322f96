package catalog

import (
	"fmt"
	"strings"
)

// MoodKeywords is one row of the keyword scoring table.
type MoodKeywords struct {
	Mood     string
	Keywords []string
}

// Declaration order doubles as the tie-break order for equal scores.
var moodKeywords = []MoodKeywords{
	{Mood: "happy", Keywords: []string{"happy", "joy", "excited", "great", "wonderful", "amazing", "fantastic", "😊", "😄", "good", "nice", "pleased", "delighted", "cheerful", "bright", "sunny", "positive"}},
	{Mood: "sad", Keywords: []string{"sad", "depressed", "miserable", "unhappy", "gloomy", "melancholy", "😢", "💔", "down", "blue", "sorrow", "grief", "heartbroken", "lonely", "hopeless"}},
	{Mood: "angry", Keywords: []string{"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "😠", "🤬", "rage", "outraged", "livid", "enraged", "hostile", "aggressive"}},
	{Mood: "calm", Keywords: []string{"calm", "peaceful", "relaxed", "serene", "tranquil", "quiet", "😌", "🧘", "gentle", "soothing", "mellow", "composed", "centered"}},
	{Mood: "excited", Keywords: []string{"excited", "thrilled", "eager", "enthusiastic", "pumped", "🤩", "🌟", "energetic", "buzzed", "stoked", "amped", "fired up", "motivated"}},
	{Mood: "nervous", Keywords: []string{"nervous", "anxious", "worried", "stressed", "tense", "😰", "😱", "jittery", "on edge", "uneasy", "apprehensive", "fearful", "panicked"}},
	{Mood: "romantic", Keywords: []string{"romantic", "loving", "passionate", "tender", "affectionate", "❤️", "😍", "🥰", "sweet", "caring", "devoted", "adoring", "cherished"}},
}

// Moods returns a copy of the keyword scoring table in declaration order.
func Moods() []MoodKeywords {
	out := make([]MoodKeywords, len(moodKeywords))
	for i, row := range moodKeywords {
		out[i] = MoodKeywords{Mood: row.Mood, Keywords: append([]string(nil), row.Keywords...)}
	}
	return out
}

// IntensityLexicon groups keywords that push intensity up or down.
type IntensityLexicon struct {
	High   []string
	Medium []string
	Low    []string
}

var intensityLexicon = IntensityLexicon{
	High: []string{
		"extremely", "incredibly", "absolutely", "completely", "totally", "overwhelming",
		"devastated", "ecstatic", "furious", "terrified", "hate", "can't stand",
		"😭", "😡", "🤬", "😱", "🤯", "💔", "🔥", "💥", "⚡",
	},
	Medium: []string{
		"very", "really", "quite", "deeply", "truly", "so much", "pretty", "rather",
	},
	Low: []string{
		"slightly", "a bit", "a little", "somewhat", "kind of", "kinda", "mildly", "barely",
		"😌", "🙂", "😐", "😑",
	},
}

// Intensity returns a copy of the intensity keyword lexicon.
func Intensity() IntensityLexicon {
	return IntensityLexicon{
		High:   append([]string(nil), intensityLexicon.High...),
		Medium: append([]string(nil), intensityLexicon.Medium...),
		Low:    append([]string(nil), intensityLexicon.Low...),
	}
}

// Scorer labels and classifier labels name the same feelings differently.
var moodAliases = map[string]string{
	"happy":      "joy",
	"happiness":  "joy",
	"joyful":     "joy",
	"sad":        "sadness",
	"grief":      "sadness",
	"angry":      "anger",
	"rage":       "anger",
	"nervous":    "fear",
	"anxious":    "fear",
	"anxiety":    "fear",
	"scared":     "fear",
	"tense":      "fear",
	"romantic":   "love",
	"excited":    "excitement",
	"surprised":  "surprise",
	"curious":    "curiosity",
	"awe":        "wonder",
	"peace":      "calm",
	"mysterious": "curiosity",
}

// CanonicalMood maps a scorer or classifier label onto the emotion vocabulary
// used by the story, soundtrack and insight tables.
func CanonicalMood(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if canon, ok := moodAliases[l]; ok {
		return canon
	}
	return l
}

var emotionEmoji = map[string]string{
	"joy":        "😊",
	"sadness":    "😢",
	"anger":      "😠",
	"fear":       "😰",
	"surprise":   "😲",
	"love":       "❤️",
	"disgust":    "🤢",
	"contempt":   "😤",
	"excitement": "🤩",
	"calm":       "😌",
	"curiosity":  "🤔",
	"wonder":     "✨",
	"neutral":    "😐",
}

// Emoji returns the representative emoji for a mood label.
func Emoji(label string) string {
	if e, ok := emotionEmoji[CanonicalMood(label)]; ok {
		return e
	}
	return "🎭"
}

var intensityWords = [...]string{
	"very mild", "mild", "light", "moderate", "average",
	"strong", "intense", "very intense", "overwhelming", "extreme",
}

// IntensityWord describes an intensity in [1,10]; out of range values are clamped.
func IntensityWord(intensity int) string {
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 10 {
		intensity = 10
	}
	return intensityWords[intensity-1]
}

type moodInsight struct {
	description string // %s is the intensity word
	themes      []string
	calmTone    string
	strongTone  string
	threshold   int
}

var moodInsights = map[string]moodInsight{
	"joy": {
		description: "You're experiencing %s joy and happiness. This suggests a positive outlook and energy.",
		themes:      []string{"celebration", "friendship", "achievement", "new beginnings", "community"},
		calmTone:    "gentle and heartwarming", strongTone: "uplifting and optimistic", threshold: 5,
	},
	"sadness": {
		description: "You're feeling %s sadness or melancholy. This often leads to introspective and meaningful stories.",
		themes:      []string{"healing", "memory", "loss", "redemption", "family bonds"},
		calmTone:    "melancholic and subtle", strongTone: "poignant and reflective", threshold: 5,
	},
	"anger": {
		description: "You're experiencing %s anger or frustration. This energy can drive powerful, justice-themed narratives.",
		themes:      []string{"justice", "transformation", "standing up", "social change", "empowerment"},
		calmTone:    "determined and focused", strongTone: "intense and confrontational", threshold: 6,
	},
	"fear": {
		description: "You're feeling %s fear or anxiety. This creates tension perfect for suspenseful storytelling.",
		themes:      []string{"survival", "overcoming", "facing the unknown", "courage", "protection"},
		calmTone:    "mysterious and atmospheric", strongTone: "suspenseful and tense", threshold: 6,
	},
	"surprise": {
		description: "You're experiencing %s surprise or wonder. This opens doors to discovery and adventure.",
		themes:      []string{"discovery", "revelation", "adventure", "unexpected turns", "mystery"},
		calmTone:    "curious and intriguing", strongTone: "dynamic and unexpected", threshold: 5,
	},
	"love": {
		description: "You're feeling %s love or affection. This warmth translates beautifully into romantic narratives.",
		themes:      []string{"connection", "sacrifice", "devotion", "relationships", "commitment"},
		calmTone:    "tender and intimate", strongTone: "passionate and romantic", threshold: 6,
	},
	"excitement": {
		description: "You're feeling %s excitement. This energy is perfect for dynamic, adventurous stories.",
		themes:      []string{"adventure", "exploration", "achievement", "competition", "dreams"},
		calmTone:    "enthusiastic and engaging", strongTone: "energetic and fast-paced", threshold: 6,
	},
	"calm": {
		description: "You're feeling %s calm. Quiet moods suit patient, character-driven stories.",
		themes:      []string{"reflection", "balance", "home", "simple pleasures", "acceptance"},
		calmTone:    "serene and unhurried", strongTone: "still and luminous", threshold: 6,
	},
	"curiosity": {
		description: "You're feeling %s curiosity. Questions like these make good engines for speculative stories.",
		themes:      []string{"discovery", "invention", "the unknown", "identity", "progress"},
		calmTone:    "inquisitive and thoughtful", strongTone: "restless and probing", threshold: 6,
	},
	"wonder": {
		description: "You're feeling %s wonder. That sense of awe belongs in stories with a touch of magic.",
		themes:      []string{"magic", "destiny", "hidden worlds", "courage", "belonging"},
		calmTone:    "whimsical and warm", strongTone: "soaring and mythic", threshold: 6,
	},
}

var defaultThemes = []string{"personal growth", "human nature", "life lessons"}

// Insight builds the narrative description, themes and tone for a mood at an intensity.
func Insight(label string, intensity int) (description string, themes []string, tone string) {
	canon := CanonicalMood(label)
	in, ok := moodInsights[canon]
	if !ok {
		return fmt.Sprintf("You're experiencing %s with intensity %d/10.", label, intensity),
			append([]string(nil), defaultThemes...), "balanced and engaging"
	}
	tone = in.calmTone
	if intensity > in.threshold {
		tone = in.strongTone
	}
	return fmt.Sprintf(in.description, IntensityWord(intensity)), append([]string(nil), in.themes...), tone
}

// Themes returns the recommended themes for a mood.
func Themes(label string) []string {
	_, themes, _ := Insight(label, 5)
	return themes
}
