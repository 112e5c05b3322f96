package null

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

func TestNullAdapters(t *testing.T) {
	ctx := context.Background()
	if _, err := (Classifier{}).Classify(ctx, "x"); !errors.Is(err, ports.ErrCapabilityUnavailable) {
		t.Errorf("classifier: %v", err)
	}
	if _, err := (Generator{}).Generate(ctx, "x", domain.GenerationParams{}); !errors.Is(err, ports.ErrCapabilityUnavailable) {
		t.Errorf("generator: %v", err)
	}
	if _, err := (Renderer{}).Render(ctx, domain.PosterSpec{}, rand.New(rand.NewSource(1))); !errors.Is(err, ports.ErrCapabilityUnavailable) {
		t.Errorf("renderer: %v", err)
	}
}
