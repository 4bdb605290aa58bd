package repository

import (
	"fmt"

	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/storage"
)

// Session owns the in-memory graph for one run of the program. It is
// loaded from the data file once at startup; all mutations happen in
// memory and Flush rewrites the whole file. A single process at a time is
// assumed; concurrent processes on the same file are undefined.
type Session struct {
	path     string
	users    []*models.User
	projects []*models.Project
}

// Open loads the data file into a new session. A missing file starts an
// empty session; any other load failure propagates.
func Open(path string) (*Session, error) {
	users, projects, err := storage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return &Session{path: path, users: users, projects: projects}, nil
}

// Flush serializes the entire graph back to the data file.
func (s *Session) Flush() error {
	if err := storage.Save(s.path, s.users, s.projects); err != nil {
		return fmt.Errorf("flush session: %w", err)
	}
	return nil
}

// Users returns the user repository backed by this session.
func (s *Session) Users() UserRepository {
	return &sessionUserRepository{session: s}
}

// Projects returns the project repository backed by this session.
func (s *Session) Projects() ProjectRepository {
	return &sessionProjectRepository{session: s}
}
