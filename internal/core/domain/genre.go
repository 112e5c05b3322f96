package domain

import "strings"

// Genre is one of the fixed movie categories used to select templates.
type Genre string

const (
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreThriller  Genre = "Thriller"
	GenreRomance   Genre = "Romance"
	GenreHorror    Genre = "Horror"
	GenreAdventure Genre = "Adventure"
	GenreSciFi     Genre = "Sci-Fi"
	GenreFantasy   Genre = "Fantasy"
)

// DefaultGenre is used whenever a mood cannot be mapped.
const DefaultGenre = GenreDrama

// AutoDetect is the genre override value that defers to the mood mapper.
const AutoDetect = "Auto-detect"

var allGenres = []Genre{
	GenreComedy, GenreDrama, GenreThriller, GenreRomance,
	GenreHorror, GenreAdventure, GenreSciFi, GenreFantasy,
}

// AllGenres returns the closed genre set in declaration order.
func AllGenres() []Genre {
	out := make([]Genre, len(allGenres))
	copy(out, allGenres)
	return out
}

// Valid reports whether g belongs to the closed set.
func (g Genre) Valid() bool {
	for _, known := range allGenres {
		if g == known {
			return true
		}
	}
	return false
}

// ParseGenre resolves a user supplied genre name. It returns ok=false for
// empty input, "Auto-detect", and anything outside the closed set.
func ParseGenre(s string) (Genre, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AutoDetect) {
		return "", false
	}
	for _, g := range allGenres {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	// "scifi" and "sci fi" show up in hand-typed requests.
	folded := strings.NewReplacer("-", "", " ", "").Replace(strings.ToLower(s))
	if folded == "scifi" {
		return GenreSciFi, true
	}
	return "", false
}
