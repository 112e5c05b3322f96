package story

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

const maxTitleWords = 10

var (
	capitalisedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	introducedName  = regexp.MustCompile(`([A-Z][A-Z.']*(?: [A-Z][A-Z.']*)*) \(\d`)
)

var stopWords = map[string]struct{}{
	"The": {}, "A": {}, "An": {}, "And": {}, "Or": {}, "But": {}, "In": {}, "On": {},
	"At": {}, "To": {}, "For": {}, "Of": {}, "With": {}, "By": {},
}

var whWords = []string{"When", "How", "Why"}

// Title fills a genre title pattern, borrowing a capitalised script word when
// the pattern asks for one.
func Title(script string, genre domain.Genre, mood string, rng *rand.Rand) string {
	words := meaningfulWords(script)
	patterns := catalog.TitlePatterns(genre)
	p := patterns[rng.Intn(len(patterns))]

	title := p.Pattern
	if strings.Contains(title, "{word}") {
		word := p.Fallback
		if len(words) > 0 {
			word = words[rng.Intn(len(words))]
		}
		title = strings.ReplaceAll(title, "{word}", word)
	}
	if strings.Contains(title, "{wh}") {
		title = strings.ReplaceAll(title, "{wh}", whWords[rng.Intn(len(whWords))])
	}
	title = strings.ReplaceAll(title, "{emotion}", titleCase(mood))
	title = strings.ReplaceAll(title, "{genre}", string(genre))
	return title
}

// Tagline picks one of the genre's taglines.
func Tagline(genre domain.Genre, rng *rand.Rand) string {
	lines := catalog.Taglines(genre)
	return lines[rng.Intn(len(lines))]
}

// Summary fills the genre summary pattern with the script's lead character and
// the first theme.
func Summary(script string, genre domain.Genre, themes []string) string {
	theme := catalog.Profile(genre).Themes[0]
	if len(themes) > 0 {
		theme = themes[0]
	}
	out := catalog.SummaryPattern(genre)
	out = strings.ReplaceAll(out, "{character}", MainCharacter(script))
	out = strings.ReplaceAll(out, "{theme}", theme)
	return upperFirst(out)
}

// MainCharacter finds the first character introduced as "NAME (age)", falling
// back to the first character cue and then to "the protagonist".
func MainCharacter(script string) string {
	if m := introducedName.FindStringSubmatch(script); m != nil {
		return titleCase(m[1])
	}
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if isCharacterCue(line) {
			return titleCase(line)
		}
	}
	return "the protagonist"
}

func isCharacterCue(line string) bool {
	if !isUpperLine(line) || len(strings.Fields(line)) > 3 {
		return false
	}
	for _, prefix := range []string{"SCENE", "INT.", "EXT.", "FADE", "CUT TO", "THE END"} {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	for _, r := range line {
		if !unicode.IsLetter(r) && r != ' ' && r != '.' && r != '\'' {
			return false
		}
	}
	return true
}

func meaningfulWords(script string) []string {
	var out []string
	for _, w := range capitalisedWord.FindAllString(script, -1) {
		if _, skip := stopWords[w]; skip {
			continue
		}
		out = append(out, w)
		if len(out) == maxTitleWords {
			break
		}
	}
	return out
}

func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = upperFirst(f)
	}
	return strings.Join(fields, " ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
