package domain

import "fmt"

// RGB is an 8-bit colour triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorScheme is the five named colours of a poster palette.
type ColorScheme struct {
	Primary    RGB `json:"primary"`
	Secondary  RGB `json:"secondary"`
	Accent     RGB `json:"accent"`
	Background RGB `json:"background"`
	Text       RGB `json:"text"`
}

// PosterArtifact is the poster record. Image is nil when no renderer ran.
type PosterArtifact struct {
	Description string      `json:"description"`
	Image       []byte      `json:"-"`
	HasImage    bool        `json:"has_image"`
	ColorScheme ColorScheme `json:"color_scheme"`
}

// SoundtrackRecommendation is copied verbatim from the mood soundtrack table.
type SoundtrackRecommendation struct {
	Genre        string   `json:"genre"`
	Mood         string   `json:"mood"`
	Elements     []string `json:"elements"`
	Artists      []string `json:"artists"`
	SampleTracks []string `json:"sample_tracks"`
}

// PosterSpec is what a poster renderer draws from.
type PosterSpec struct {
	Title       string      `json:"title"`
	Tagline     string      `json:"tagline"`
	Genre       Genre       `json:"genre"`
	Mood        string      `json:"mood"`
	ColorScheme ColorScheme `json:"color_scheme"`
}
