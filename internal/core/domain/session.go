package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidInput   = errors.New("domain: invalid input")
	ErrNotFound       = errors.New("domain: not found")
	ErrNoCurrentStory = errors.New("domain: no current story")
	ErrDuplicate      = errors.New("domain: duplicate entry")
)

// StoryVersion is a saved copy of a story in the session history.
type StoryVersion struct {
	ID                string        `json:"id"`
	Number            int           `json:"version"`
	Story             StoryArtifact `json:"story"`
	MoodLabel         string        `json:"mood"`
	Intensity         int           `json:"intensity"`
	PosterDescription string        `json:"poster_description"`
	SavedAt           time.Time     `json:"saved_at"`
}

// Role is a collaborator's access level.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ParseRole accepts the three known roles, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleViewer:
		return RoleViewer, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidInput
}

// Permissions lists what a role may do. Viewers read and comment; everyone else also edits.
func (r Role) Permissions() []string {
	if r == RoleViewer {
		return []string{"read", "comment"}
	}
	return []string{"read", "comment", "edit"}
}

// Collaborator is someone invited to the current session.
type Collaborator struct {
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Permissions []string  `json:"permissions"`
	AddedAt     time.Time `json:"added_at"`
}

// NewCollaborator validates the address and role and fills in permissions.
func NewCollaborator(email, role string, now time.Time) (Collaborator, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Collaborator{}, ErrInvalidInput
	}
	r, err := ParseRole(role)
	if err != nil {
		return Collaborator{}, err
	}
	return Collaborator{
		Email:       strings.ToLower(email),
		Role:        r,
		Permissions: r.Permissions(),
		AddedAt:     now.UTC(),
	}, nil
}
