package catalog

import "github.com/ewilliams-labs/moodreel/internal/core/domain"

var soundtracks = map[string]domain.SoundtrackRecommendation{
	"joy": {
		Genre: "Indie Pop", Mood: "Uplifting",
		Elements:     []string{"Upbeat pop songs with infectious melodies", "Feel-good rock anthems that lift your spirits", "Cheerful electronic music with positive vibes"},
		Artists:      []string{"Pharrell Williams", "Lizzo", "Vampire Weekend"},
		SampleTracks: []string{"Happy", "Good as Hell", "A-Punk"},
	},
	"sadness": {
		Genre: "Piano Ballads", Mood: "Melancholic",
		Elements:     []string{"Melancholic ballads with emotional depth", "Gentle piano pieces that soothe the soul", "Soulful blues with heartfelt storytelling"},
		Artists:      []string{"Adele", "Ólafur Arnalds", "Bon Iver"},
		SampleTracks: []string{"Someone Like You", "Saman", "Skinny Love"},
	},
	"anger": {
		Genre: "Hard Rock", Mood: "Intense",
		Elements:     []string{"High-energy rock with powerful guitar riffs", "Intense electronic music with driving beats", "Dramatic orchestral pieces with bold brass"},
		Artists:      []string{"Rage Against the Machine", "Nine Inch Nails", "Hans Zimmer"},
		SampleTracks: []string{"Killing in the Name", "Head Like a Hole", "Why So Serious?"},
	},
	"excitement": {
		Genre: "Electronic", Mood: "Energetic",
		Elements:     []string{"High-energy electronic with pumping bass", "Dynamic rock anthems with driving rhythms", "Thrilling orchestral with dramatic crescendos"},
		Artists:      []string{"Daft Punk", "The Chemical Brothers", "Two Steps from Hell"},
		SampleTracks: []string{"One More Time", "Go", "Heart of Courage"},
	},
	"calm": {
		Genre: "Ambient", Mood: "Serene",
		Elements:     []string{"Ambient soundscapes with gentle textures", "Smooth jazz with relaxed improvisation", "Peaceful classical with gentle melodies"},
		Artists:      []string{"Brian Eno", "Nils Frahm", "Norah Jones"},
		SampleTracks: []string{"An Ending (Ascent)", "Says", "Don't Know Why"},
	},
	"fear": {
		Genre: "Dark Ambient", Mood: "Tense",
		Elements:     []string{"Soft ambient music with calming tones", "Suspenseful orchestral with low strings", "Dark electronic with uneasy pulses"},
		Artists:      []string{"Trent Reznor & Atticus Ross", "Mica Levi", "Johann Johannsson"},
		SampleTracks: []string{"Hand Covers Bruise", "Under the Skin", "The Beast"},
	},
	"love": {
		Genre: "Soul", Mood: "Romantic",
		Elements:     []string{"Love ballads with tender vocals", "Soft jazz with romantic melodies", "Romantic classical with beautiful harmonies"},
		Artists:      []string{"Etta James", "John Legend", "Norah Jones"},
		SampleTracks: []string{"At Last", "All of Me", "Come Away with Me"},
	},
	"surprise": {
		Genre: "Orchestral", Mood: "Whimsical",
		Elements:     []string{"Playful orchestral with sudden turns", "Quirky indie with unexpected hooks", "Bright strings and pizzicato"},
		Artists:      []string{"Danny Elfman", "Alexandre Desplat", "Yann Tiersen"},
		SampleTracks: []string{"Ice Dance", "Mr. Moustafa", "Comptine d'un autre été"},
	},
	"curiosity": {
		Genre: "Synthwave", Mood: "Inquisitive",
		Elements:     []string{"Futuristic electronic with evolving textures", "Space ambient with slow swells", "Minimalist synth arpeggios"},
		Artists:      []string{"Vangelis", "Jóhann Jóhannsson", "M83"},
		SampleTracks: []string{"Blade Runner Blues", "Heptapod B", "Outro"},
	},
	"wonder": {
		Genre: "Celtic Orchestral", Mood: "Enchanted",
		Elements:     []string{"Sweeping orchestral themes", "Folk instruments with choir", "Harp and flute melodies"},
		Artists:      []string{"Howard Shore", "Enya", "Joe Hisaishi"},
		SampleTracks: []string{"Concerning Hobbits", "May It Be", "One Summer's Day"},
	},
}

var defaultSoundtrack = domain.SoundtrackRecommendation{
	Genre: "Cinematic", Mood: "Versatile",
	Elements:     []string{"Versatile soundtrack for all moods"},
	Artists:      []string{"Ludovico Einaudi"},
	SampleTracks: []string{"Experience"},
}

// Soundtrack looks up the soundtrack row for a mood.
func Soundtrack(label string) (domain.SoundtrackRecommendation, bool) {
	st, ok := soundtracks[CanonicalMood(label)]
	if !ok {
		return cloneSoundtrack(defaultSoundtrack), false
	}
	return cloneSoundtrack(st), true
}

func cloneSoundtrack(st domain.SoundtrackRecommendation) domain.SoundtrackRecommendation {
	return domain.SoundtrackRecommendation{
		Genre:        st.Genre,
		Mood:         st.Mood,
		Elements:     append([]string(nil), st.Elements...),
		Artists:      append([]string(nil), st.Artists...),
		SampleTracks: append([]string(nil), st.SampleTracks...),
	}
}
