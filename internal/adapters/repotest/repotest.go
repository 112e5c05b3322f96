// Package repotest holds the behaviour every ports.SessionRepository must
// show. Adapter tests call Run with a fresh repository.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

// Run exercises versions and collaborators against an empty repository.
func Run(t *testing.T, repo ports.SessionRepository) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("versions", func(t *testing.T) {
		if vs, err := repo.ListVersions(ctx); err != nil || len(vs) != 0 {
			t.Fatalf("expected empty history, got %v %v", vs, err)
		}

		first := domain.StoryVersion{
			ID: "v-1",
			Story: domain.StoryArtifact{
				ID: "s-1", Title: "The Coffee Chronicles", Tagline: "Life's too short",
				Script: "SCENE 1:\nINT. CAFE", Genre: domain.GenreComedy, Mood: "joy",
				Length: domain.LengthShort, Method: domain.MethodTemplate,
			},
			MoodLabel:         "joy",
			Intensity:         8,
			PosterDescription: "bright",
			SavedAt:           now,
		}
		saved, err := repo.SaveVersion(ctx, first)
		if err != nil {
			t.Fatalf("SaveVersion: %v", err)
		}
		if saved.Number != 1 {
			t.Errorf("first version number: got %d", saved.Number)
		}

		second := first
		second.ID = "v-2"
		second.Story.Title = "Letters to Tomorrow"
		second.SavedAt = now.Add(time.Minute)
		saved2, err := repo.SaveVersion(ctx, second)
		if err != nil {
			t.Fatalf("SaveVersion: %v", err)
		}
		if saved2.Number != 2 {
			t.Errorf("second version number: got %d", saved2.Number)
		}

		got, err := repo.GetVersion(ctx, "v-1")
		if err != nil {
			t.Fatalf("GetVersion: %v", err)
		}
		if got.Story != first.Story || got.MoodLabel != "joy" || got.Intensity != 8 || !got.SavedAt.Equal(now) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, first)
		}

		vs, err := repo.ListVersions(ctx)
		if err != nil || len(vs) != 2 {
			t.Fatalf("ListVersions: %v %d", err, len(vs))
		}
		if vs[0].ID != "v-1" || vs[1].ID != "v-2" {
			t.Errorf("expected oldest first, got %s, %s", vs[0].ID, vs[1].ID)
		}

		if _, err := repo.GetVersion(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if _, err := repo.SaveVersion(ctx, first); !errors.Is(err, domain.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate for repeated ID, got %v", err)
		}
	})

	t.Run("collaborators", func(t *testing.T) {
		ana, _ := domain.NewCollaborator("ana@example.com", "viewer", now)
		bo, _ := domain.NewCollaborator("bo@example.com", "admin", now.Add(time.Second))

		for _, c := range []domain.Collaborator{ana, bo} {
			if err := repo.AddCollaborator(ctx, c); err != nil {
				t.Fatalf("AddCollaborator(%s): %v", c.Email, err)
			}
		}
		if err := repo.AddCollaborator(ctx, ana); !errors.Is(err, domain.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}

		cs, err := repo.ListCollaborators(ctx)
		if err != nil || len(cs) != 2 {
			t.Fatalf("ListCollaborators: %v %d", err, len(cs))
		}
		if cs[0].Email != "ana@example.com" || cs[0].Role != domain.RoleViewer || len(cs[0].Permissions) != 2 {
			t.Errorf("unexpected first collaborator %+v", cs[0])
		}
		if cs[1].Role != domain.RoleAdmin || len(cs[1].Permissions) != 3 {
			t.Errorf("unexpected second collaborator %+v", cs[1])
		}

		if err := repo.RemoveCollaborator(ctx, "ana@example.com"); err != nil {
			t.Fatalf("RemoveCollaborator: %v", err)
		}
		if err := repo.RemoveCollaborator(ctx, "ana@example.com"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		cs, _ = repo.ListCollaborators(ctx)
		if len(cs) != 1 || cs[0].Email != "bo@example.com" {
			t.Errorf("unexpected list after removal %+v", cs)
		}
	})
}
