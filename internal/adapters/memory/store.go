// Package memory keeps session history in process memory. It is the default
// repository; everything is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

// SessionStore manages versions and collaborators in memory.
type SessionStore struct {
	mu            sync.RWMutex
	versions      []domain.StoryVersion
	versionIndex  map[string]int // version ID -> position in versions
	collaborators []domain.Collaborator
}

var _ ports.SessionRepository = (*SessionStore)(nil)

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		versionIndex: make(map[string]int),
	}
}

func (s *SessionStore) SaveVersion(ctx context.Context, v domain.StoryVersion) (domain.StoryVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if _, exists := s.versionIndex[v.ID]; exists {
		return domain.StoryVersion{}, fmt.Errorf("memory: version %s: %w", v.ID, domain.ErrDuplicate)
	}
	v.Number = len(s.versions) + 1
	s.versionIndex[v.ID] = len(s.versions)
	s.versions = append(s.versions, v)
	return v, nil
}

func (s *SessionStore) ListVersions(ctx context.Context) ([]domain.StoryVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.StoryVersion(nil), s.versions...), nil
}

func (s *SessionStore) GetVersion(ctx context.Context, id string) (domain.StoryVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.versionIndex[id]
	if !ok {
		return domain.StoryVersion{}, fmt.Errorf("memory: version %s: %w", id, domain.ErrNotFound)
	}
	return s.versions[i], nil
}

func (s *SessionStore) AddCollaborator(ctx context.Context, c domain.Collaborator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.collaborators {
		if existing.Email == c.Email {
			return fmt.Errorf("memory: collaborator %s: %w", c.Email, domain.ErrDuplicate)
		}
	}
	c.Permissions = append([]string(nil), c.Permissions...)
	s.collaborators = append(s.collaborators, c)
	return nil
}

func (s *SessionStore) RemoveCollaborator(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for i, c := range s.collaborators {
		if c.Email == email {
			s.collaborators = append(s.collaborators[:i], s.collaborators[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("memory: collaborator %s: %w", email, domain.ErrNotFound)
}

func (s *SessionStore) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Collaborator(nil), s.collaborators...), nil
}
