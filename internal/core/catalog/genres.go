package catalog

import (
	"strings"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

var directGenres = map[string]domain.Genre{
	"joy":        domain.GenreComedy,
	"happy":      domain.GenreComedy,
	"happiness":  domain.GenreComedy,
	"amusement":  domain.GenreComedy,
	"sadness":    domain.GenreDrama,
	"sad":        domain.GenreDrama,
	"calm":       domain.GenreDrama,
	"neutral":    domain.GenreDrama,
	"anger":      domain.GenreThriller,
	"angry":      domain.GenreThriller,
	"contempt":   domain.GenreThriller,
	"nervous":    domain.GenreThriller,
	"fear":       domain.GenreHorror,
	"disgust":    domain.GenreHorror,
	"love":       domain.GenreRomance,
	"romantic":   domain.GenreRomance,
	"excitement": domain.GenreAdventure,
	"excited":    domain.GenreAdventure,
	"surprise":   domain.GenreAdventure,
	"curiosity":  domain.GenreSciFi,
	"wonder":     domain.GenreFantasy,
	"awe":        domain.GenreFantasy,
}

// DirectGenre is the exact-match step of genre mapping.
func DirectGenre(label string) (domain.Genre, bool) {
	g, ok := directGenres[strings.ToLower(strings.TrimSpace(label))]
	return g, ok
}

// GenrePattern maps any label containing one of Words to Genre.
type GenrePattern struct {
	Genre domain.Genre
	Words []string
}

// Checked in order; the first group with a hit wins.
var genrePatterns = []GenrePattern{
	{Genre: domain.GenreComedy, Words: []string{"joy", "happy", "excited", "amused"}},
	{Genre: domain.GenreDrama, Words: []string{"sad", "melancholy", "grief", "disappointed"}},
	{Genre: domain.GenreThriller, Words: []string{"angry", "rage", "frustrated", "annoyed"}},
	{Genre: domain.GenreHorror, Words: []string{"scared", "afraid", "terrified", "fear"}},
	{Genre: domain.GenreRomance, Words: []string{"love", "romantic", "affection"}},
	{Genre: domain.GenreAdventure, Words: []string{"surprised", "amazed", "wonder", "curious"}},
}

// GenrePatterns returns the ordered substring pattern groups.
func GenrePatterns() []GenrePattern {
	out := make([]GenrePattern, len(genrePatterns))
	for i, p := range genrePatterns {
		out[i] = GenrePattern{Genre: p.Genre, Words: append([]string(nil), p.Words...)}
	}
	return out
}

var colorSchemes = map[domain.Genre]domain.ColorScheme{
	domain.GenreComedy: {
		Primary: domain.RGB{R: 255, G: 107, B: 107}, Secondary: domain.RGB{R: 78, G: 205, B: 196},
		Accent: domain.RGB{R: 255, G: 230, B: 109}, Background: domain.RGB{R: 255, G: 248, B: 225},
		Text: domain.RGB{R: 51, G: 51, B: 51},
	},
	domain.GenreDrama: {
		Primary: domain.RGB{R: 141, G: 110, B: 99}, Secondary: domain.RGB{R: 161, G: 136, B: 127},
		Accent: domain.RGB{R: 215, G: 204, B: 200}, Background: domain.RGB{R: 245, G: 245, B: 220},
		Text: domain.RGB{R: 62, G: 39, B: 35},
	},
	domain.GenreThriller: {
		Primary: domain.RGB{R: 38, G: 50, B: 56}, Secondary: domain.RGB{R: 69, G: 90, B: 100},
		Accent: domain.RGB{R: 255, G: 82, B: 82}, Background: domain.RGB{R: 236, G: 239, B: 241},
		Text: domain.RGB{R: 33, G: 33, B: 33},
	},
	domain.GenreRomance: {
		Primary: domain.RGB{R: 233, G: 30, B: 99}, Secondary: domain.RGB{R: 248, G: 187, B: 208},
		Accent: domain.RGB{R: 252, G: 228, B: 236}, Background: domain.RGB{R: 255, G: 240, B: 245},
		Text: domain.RGB{R: 136, G: 14, B: 79},
	},
	domain.GenreHorror: {
		Primary: domain.RGB{R: 183, G: 28, B: 28}, Secondary: domain.RGB{R: 66, G: 66, B: 66},
		Accent: domain.RGB{R: 255, G: 138, B: 128}, Background: domain.RGB{R: 33, G: 33, B: 33},
		Text: domain.RGB{R: 255, G: 255, B: 255},
	},
	domain.GenreAdventure: {
		Primary: domain.RGB{R: 46, G: 125, B: 50}, Secondary: domain.RGB{R: 102, G: 187, B: 106},
		Accent: domain.RGB{R: 165, G: 214, B: 167}, Background: domain.RGB{R: 232, G: 245, B: 233},
		Text: domain.RGB{R: 27, G: 94, B: 32},
	},
	domain.GenreSciFi: {
		Primary: domain.RGB{R: 21, G: 101, B: 192}, Secondary: domain.RGB{R: 66, G: 165, B: 245},
		Accent: domain.RGB{R: 187, G: 222, B: 251}, Background: domain.RGB{R: 227, G: 242, B: 253},
		Text: domain.RGB{R: 13, G: 71, B: 161},
	},
	domain.GenreFantasy: {
		Primary: domain.RGB{R: 123, G: 31, B: 162}, Secondary: domain.RGB{R: 149, G: 117, B: 205},
		Accent: domain.RGB{R: 209, G: 196, B: 233}, Background: domain.RGB{R: 243, G: 229, B: 245},
		Text: domain.RGB{R: 74, G: 20, B: 140},
	},
}

// ColorScheme returns the palette for a genre, Drama's for anything unknown.
func ColorScheme(g domain.Genre) domain.ColorScheme {
	if cs, ok := colorSchemes[g]; ok {
		return cs
	}
	return colorSchemes[domain.DefaultGenre]
}

// PosterTemplate is the genre half of a poster description.
type PosterTemplate struct {
	Layout         string
	VisualElements []string
}

var posterTemplates = map[domain.Genre]PosterTemplate{
	domain.GenreComedy:    {Layout: "Bright, busy composition with characters caught mid-gesture", VisualElements: []string{"playful typography", "bold primary colours", "exaggerated expressions"}},
	domain.GenreDrama:     {Layout: "Close portrait framing with generous negative space", VisualElements: []string{"soft window light", "muted textures", "a single symbolic object"}},
	domain.GenreThriller:  {Layout: "Off-centre silhouette under hard top light", VisualElements: []string{"long shadows", "city grid at night", "a red accent mark"}},
	domain.GenreRomance:   {Layout: "Two figures framed close, soft focus background", VisualElements: []string{"warm backlight", "floating petals", "script lettering"}},
	domain.GenreHorror:    {Layout: "Dark frame with a lone figure dwarfed by the setting", VisualElements: []string{"fog", "a half-open door", "cracked lettering"}},
	domain.GenreAdventure: {Layout: "Wide landscape with the hero small against the horizon", VisualElements: []string{"mountain peaks", "a compass rose", "dramatic sky"}},
	domain.GenreSciFi:     {Layout: "Symmetric composition around a glowing focal point", VisualElements: []string{"grid lines", "circuit patterns", "starfield"}},
	domain.GenreFantasy:   {Layout: "Tall vertical frame rising toward a castle or tree", VisualElements: []string{"glowing runes", "mist", "ornate border"}},
}

// Poster returns the poster template for a genre.
func Poster(g domain.Genre) PosterTemplate {
	pt, ok := posterTemplates[g]
	if !ok {
		pt = posterTemplates[domain.DefaultGenre]
	}
	return PosterTemplate{Layout: pt.Layout, VisualElements: append([]string(nil), pt.VisualElements...)}
}

// PosterMood is the mood half of a poster description.
type PosterMood struct {
	Colors   []string
	Layout   string
	Elements string
	Story    string
}

var posterMoods = map[string]PosterMood{
	"joy":        {Colors: []string{"Warm yellows", "Bright oranges", "Vibrant pinks", "Sunny golds"}, Layout: "Dynamic composition with upward movement and bright lighting", Elements: "Joyful atmosphere with uplifting visual elements and cheerful imagery", Story: "Optimistic storytelling with themes of triumph and celebration"},
	"sadness":    {Colors: []string{"Cool blues", "Soft purples", "Gentle grays", "Muted tones"}, Layout: "Contemplative composition with gentle curves and soft shadows", Elements: "Melancholic atmosphere with reflective visual elements", Story: "Emotional storytelling with themes of growth and understanding"},
	"anger":      {Colors: []string{"Deep reds", "Dark oranges", "Bold blacks", "Fiery tones"}, Layout: "Dynamic composition with sharp angles and intense contrasts", Elements: "Intense atmosphere with powerful visual elements and dramatic lighting", Story: "High-impact storytelling with themes of transformation and strength"},
	"excitement": {Colors: []string{"Electric blues", "Bright reds", "Dynamic greens", "Vibrant purples"}, Layout: "Energetic composition with diagonal lines and dynamic movement", Elements: "Thrilling atmosphere with high-energy visual elements", Story: "Adventure storytelling with themes of discovery and excitement"},
	"calm":       {Colors: []string{"Soft pastels", "Earth tones", "Gentle whites", "Muted blues"}, Layout: "Balanced composition with smooth lines and harmonious proportions", Elements: "Peaceful atmosphere with serene visual elements", Story: "Contemplative storytelling with themes of wisdom and tranquility"},
	"fear":       {Colors: []string{"Cool grays", "Soft blues", "Muted greens", "Gentle purples"}, Layout: "Tense composition with subtle movement and careful balance", Elements: "Anxious atmosphere with delicate visual elements", Story: "Suspenseful storytelling with themes of courage and growth"},
	"love":       {Colors: []string{"Rose pinks", "Candle golds", "Deep reds", "Blush whites"}, Layout: "Intimate composition with soft focus and close framing", Elements: "Tender atmosphere with warm light and gentle contact", Story: "Romantic storytelling with themes of connection and devotion"},
}

// PosterMoodFor returns mood-driven poster details. Unknown moods get the calm entry.
func PosterMoodFor(label string) PosterMood {
	pm, ok := posterMoods[CanonicalMood(label)]
	if !ok {
		pm = posterMoods["calm"]
	}
	return PosterMood{Colors: append([]string(nil), pm.Colors...), Layout: pm.Layout, Elements: pm.Elements, Story: pm.Story}
}

// Title patterns use {word} for a capitalised word lifted from the script,
// {emotion} for the title-cased mood, {genre} for the genre and {wh} for When/How/Why.
// Fallback words fill {word} when the script offers none.
type TitlePattern struct {
	Pattern  string
	Fallback string
}

var titlePatterns = map[domain.Genre][]TitlePattern{
	domain.GenreComedy:    {{"The {word} Chronicles", "Comedy"}, {"{wh} {emotion} Met {genre}", ""}, {"The Great {emotion} Adventure", ""}},
	domain.GenreDrama:     {{"Letters to {word}", "Tomorrow"}, {"The {emotion} Within", ""}, {"Echoes of {word}", "Memory"}},
	domain.GenreThriller:  {{"The {word} Conspiracy", "Truth"}, {"Dark {word}", "Secrets"}, {"Final {word}", "Hour"}},
	domain.GenreRomance:   {{"Love in the Time of {emotion}", ""}, {"The {word} Waltz", "Heart"}, {"Midnight {word}", "Promise"}},
	domain.GenreHorror:    {{"The {word} House", "Haunting"}, {"Whispers of {word}", "Darkness"}, {"The Last {word}", "Hope"}},
	domain.GenreAdventure: {{"Quest for {word}", "Truth"}, {"The {word} Expedition", "Lost"}, {"Beyond {word}", "Tomorrow"}},
	domain.GenreSciFi:     {{"The {word} Protocol", "Future"}, {"Digital {word}", "Dreams"}, {"Tomorrow's {word}", "Child"}},
	domain.GenreFantasy:   {{"The {word} Crown", "Hollow"}, {"Song of {word}", "Embers"}, {"The {emotion} Spell", ""}},
}

// TitlePatterns returns the title candidates for a genre.
func TitlePatterns(g domain.Genre) []TitlePattern {
	tp, ok := titlePatterns[g]
	if !ok {
		tp = titlePatterns[domain.DefaultGenre]
	}
	return append([]TitlePattern(nil), tp...)
}

var taglines = map[domain.Genre][]string{
	domain.GenreComedy:    {"Sometimes the best days come after the worst mistakes", "Laughter is the best medicine, but timing is everything", "Life's too short to take seriously"},
	domain.GenreDrama:     {"Every ending is a new beginning", "The heart knows what the mind cannot understand", "Some stories can only be told through tears"},
	domain.GenreThriller:  {"The truth has a way of surfacing", "Trust no one, suspect everyone", "Some secrets are worth killing for"},
	domain.GenreRomance:   {"Love finds a way", "Sometimes the heart knows first", "True love never gives up"},
	domain.GenreHorror:    {"Fear has a new address", "Some doors should never be opened", "The past never stays buried"},
	domain.GenreAdventure: {"Every journey begins with a single step", "Fortune favors the bold", "The greatest treasures are found within"},
	domain.GenreSciFi:     {"The future is what we make it", "Progress comes with a price", "Humanity's greatest test awaits"},
	domain.GenreFantasy:   {"Every legend starts with someone ordinary", "Magic always asks for something back", "Not all who wander are lost"},
}

// Taglines returns the tagline candidates for a genre.
func Taglines(g domain.Genre) []string {
	tl, ok := taglines[g]
	if !ok {
		tl = taglines[domain.DefaultGenre]
	}
	return append([]string(nil), tl...)
}

// Summary patterns take {character} and {theme}.
var summaryPatterns = map[domain.Genre]string{
	domain.GenreComedy:    "{character} learns that sometimes the best adventures begin with the biggest mistakes, discovering that {theme} can turn any disaster into a triumph.",
	domain.GenreDrama:     "When {character} faces a life-changing moment, they must confront their past and discover that {theme} comes from the most unexpected places.",
	domain.GenreThriller:  "{character} uncovers a dangerous truth that puts everything they care about at risk, forcing them to choose between safety and {theme}.",
	domain.GenreRomance:   "Against all odds, {character} discovers that love isn't just about finding the right person, but about the courage to fight for {theme}.",
	domain.GenreHorror:    "When {character} confronts an ancient evil, they must overcome their deepest fears to protect those they love and restore {theme}.",
	domain.GenreAdventure: "On an epic quest, {character} discovers that the greatest treasures aren't gold or glory, but the {theme} found within themselves.",
	domain.GenreSciFi:     "In a world transformed by technology, {character} must navigate the fine line between progress and humanity, ultimately learning that {theme} transcends all boundaries.",
	domain.GenreFantasy:   "Drawn into a realm older than memory, {character} must bargain with powers they barely understand and learn that {theme} is the truest magic.",
}

// SummaryPattern returns the summary pattern for a genre.
func SummaryPattern(g domain.Genre) string {
	if sp, ok := summaryPatterns[g]; ok {
		return sp
	}
	return summaryPatterns[domain.DefaultGenre]
}

// GenreProfile feeds model prompts.
type GenreProfile struct {
	Tone     string
	Elements []string
	Themes   []string
}

var genreProfiles = map[domain.Genre]GenreProfile{
	domain.GenreComedy:    {Tone: "lighthearted, funny, optimistic", Elements: []string{"humor", "misunderstandings", "quirky characters", "light conflict", "happy ending"}, Themes: []string{"friendship", "love conquers all", "being yourself", "second chances"}},
	domain.GenreDrama:     {Tone: "serious, emotional, contemplative", Elements: []string{"emotional depth", "character development", "meaningful conflict", "life lessons"}, Themes: []string{"redemption", "family bonds", "coming of age", "forgiveness", "sacrifice"}},
	domain.GenreThriller:  {Tone: "tense, suspenseful, dark", Elements: []string{"suspense", "mystery", "danger", "plot twists", "high stakes"}, Themes: []string{"justice vs vengeance", "trust", "power corruption", "survival"}},
	domain.GenreRomance:   {Tone: "romantic, emotional, hopeful", Elements: []string{"love story", "emotional connection", "relationship obstacles", "chemistry"}, Themes: []string{"true love", "second chances", "destiny", "sacrifice for love"}},
	domain.GenreHorror:    {Tone: "scary, intense, foreboding", Elements: []string{"fear", "supernatural", "survival", "dark atmosphere", "unknown threat"}, Themes: []string{"good vs evil", "facing fears", "consequences", "survival instinct"}},
	domain.GenreAdventure: {Tone: "exciting, adventurous, inspiring", Elements: []string{"quest", "heroism", "exploration", "discovery", "brave deeds"}, Themes: []string{"heroism", "friendship", "courage", "discovery", "growing up"}},
	domain.GenreSciFi:     {Tone: "imaginative, thought-provoking, futuristic", Elements: []string{"technology", "future setting", "scientific concepts", "exploration"}, Themes: []string{"humanity vs technology", "progress", "identity", "future consequences"}},
	domain.GenreFantasy:   {Tone: "wondrous, mythic, bittersweet", Elements: []string{"magic", "ancient prophecy", "hidden realms", "unlikely heroes"}, Themes: []string{"destiny", "courage", "the cost of power", "belonging"}},
}

// Profile returns the prompt profile for a genre.
func Profile(g domain.Genre) GenreProfile {
	gp, ok := genreProfiles[g]
	if !ok {
		gp = genreProfiles[domain.DefaultGenre]
	}
	return GenreProfile{
		Tone:     gp.Tone,
		Elements: append([]string(nil), gp.Elements...),
		Themes:   append([]string(nil), gp.Themes...),
	}
}

var genreIcons = map[domain.Genre]string{
	domain.GenreComedy:    "😂",
	domain.GenreDrama:     "🎭",
	domain.GenreThriller:  "🔪",
	domain.GenreRomance:   "💕",
	domain.GenreHorror:    "👻",
	domain.GenreAdventure: "🧭",
	domain.GenreSciFi:     "🚀",
	domain.GenreFantasy:   "🐉",
}

// GenreIcon returns the emoji shown next to a genre.
func GenreIcon(g domain.Genre) string {
	if icon, ok := genreIcons[g]; ok {
		return icon
	}
	return "🎬"
}
