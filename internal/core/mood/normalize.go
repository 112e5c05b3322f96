package mood

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// DefaultMaxInputRunes bounds mood descriptions.
const DefaultMaxInputRunes = 500

var (
	urlPattern          = regexp.MustCompile(`https?://\S+`)
	repeatedPunctuation = regexp.MustCompile(`([.!?])[.!?]+`)
)

// CleanForModel prepares text for a classifier: URLs dropped, runs of
// whitespace collapsed, and repeated sentence punctuation reduced to one mark.
// Emoji are kept.
func CleanForModel(input string) string {
	if input == "" {
		return ""
	}
	out := urlPattern.ReplaceAllString(input, "")
	out = collapseWhitespace(out)
	out = repeatedPunctuation.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}

func collapseWhitespace(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsSpace(r) {
			if !lastSpace {
				out.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		out.WriteRune(r)
		lastSpace = false
	}
	return out.String()
}

// Validate rejects blank input and input longer than maxRunes (when maxRunes > 0).
func Validate(text string, maxRunes int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: mood description is empty", domain.ErrInvalidInput)
	}
	if maxRunes > 0 && utf8.RuneCountInString(strings.TrimSpace(text)) > maxRunes {
		return fmt.Errorf("%w: mood description is longer than %d characters", domain.ErrInvalidInput, maxRunes)
	}
	return nil
}
