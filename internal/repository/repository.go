package repository

import (
	"errors"

	"github.com/arminhz/taskban/internal/models"
)

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create adds a new user to the store
	Create(user *models.User) error

	// FindByUsername finds a user by exact username match
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// ExistsUsername reports whether a user with the username is registered
	ExistsUsername(username string) bool

	// ExistsEmail reports whether a user with the email is registered
	ExistsEmail(email string) bool

	// List returns every user in registration order
	List() []*models.User
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create adds a new project to the store
	Create(project *models.Project) error

	// FindByID finds a project by its caller-supplied ID
	FindByID(id string) (*models.Project, error)

	// FindByTitle finds a project by exact title match
	FindByTitle(title string) (*models.Project, error)

	// ExistsTitle reports whether any project carries the title
	ExistsTitle(title string) bool

	// List returns every project in creation order
	List() []*models.Project

	// ListByCreator returns the projects the username created
	ListByCreator(username string) []*models.Project

	// ListByMember returns the projects the username is a member of
	ListByMember(username string) []*models.Project

	// Delete removes the project with the given ID
	Delete(id string) error
}

// Flusher persists the in-memory graph. Services call it after every
// mutation; there is no dirty tracking or batching.
type Flusher interface {
	Flush() error
}
