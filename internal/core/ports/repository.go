package ports

import (
	"context"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

// SessionRepository stores the version history and collaborator list of a session.
type SessionRepository interface {
	// SaveVersion assigns the next version number and persists v.
	SaveVersion(ctx context.Context, v domain.StoryVersion) (domain.StoryVersion, error)
	ListVersions(ctx context.Context) ([]domain.StoryVersion, error)
	GetVersion(ctx context.Context, id string) (domain.StoryVersion, error)

	AddCollaborator(ctx context.Context, c domain.Collaborator) error
	RemoveCollaborator(ctx context.Context, email string) error
	ListCollaborators(ctx context.Context) ([]domain.Collaborator, error)
}
