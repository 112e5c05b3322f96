package mood

import (
	"fmt"

	"github.com/ewilliams-labs/moodreel/internal/core/catalog"
	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// complexGap is the largest confidence gap between the top two signals that
// still reads as a blend of emotions.
const complexGap = 0.2

const maxReportedSignals = 5

// Analyze assembles the mood summary from a ranked profile.
func Analyze(signals []domain.MoodSignal, intensity int, method string) domain.MoodAnalysis {
	if len(signals) == 0 {
		signals = neutral()
	}
	primary := signals[0]
	top := signals
	if len(top) > maxReportedSignals {
		top = top[:maxReportedSignals]
	}

	desc, themes, tone := catalog.Insight(primary.Label, intensity)
	return domain.MoodAnalysis{
		Primary:    primary.Label,
		Confidence: primary.Confidence,
		Intensity:  intensity,
		Genre:      MapGenre(primary.Label),
		Signals:    append([]domain.MoodSignal(nil), top...),
		Method:     method,
		Emoji:      catalog.Emoji(primary.Label),
		Insights:   domain.MoodInsights{Description: desc, Themes: themes, Tone: tone},
		Complex:    DetectComplex(signals),
	}
}

// DetectComplex flags a profile whose top two signals are within complexGap.
func DetectComplex(signals []domain.MoodSignal) domain.ComplexEmotion {
	if len(signals) == 0 {
		return domain.ComplexEmotion{Primary: domain.NeutralMood}
	}
	if len(signals) < 2 {
		return domain.ComplexEmotion{Primary: signals[0].Label}
	}
	gap := signals[0].Confidence - signals[1].Confidence
	if gap >= complexGap {
		return domain.ComplexEmotion{Primary: signals[0].Label}
	}
	return domain.ComplexEmotion{
		IsComplex:       true,
		Primary:         signals[0].Label,
		Secondary:       signals[1].Label,
		Mix:             fmt.Sprintf("%s with %s", signals[0].Label, signals[1].Label),
		ComplexityScore: 1 - gap,
	}
}
