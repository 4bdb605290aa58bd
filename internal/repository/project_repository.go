package repository

import "github.com/arminhz/taskban/internal/models"

// sessionProjectRepository is the in-memory implementation of
// ProjectRepository backed by a Session.
type sessionProjectRepository struct {
	session *Session
}

// Create adds a new project
func (r *sessionProjectRepository) Create(project *models.Project) error {
	r.session.projects = append(r.session.projects, project)
	return nil
}

// FindByID finds a project by its caller-supplied ID
func (r *sessionProjectRepository) FindByID(id string) (*models.Project, error) {
	for _, p := range r.session.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// FindByTitle finds a project by exact title match
func (r *sessionProjectRepository) FindByTitle(title string) (*models.Project, error) {
	for _, p := range r.session.projects {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// ExistsTitle reports whether any project carries the title
func (r *sessionProjectRepository) ExistsTitle(title string) bool {
	_, err := r.FindByTitle(title)
	return err == nil
}

// List returns every project in creation order
func (r *sessionProjectRepository) List() []*models.Project {
	return r.session.projects
}

// ListByCreator returns the projects the username created
func (r *sessionProjectRepository) ListByCreator(username string) []*models.Project {
	leading := []*models.Project{}
	for _, p := range r.session.projects {
		if p.Creator == username {
			leading = append(leading, p)
		}
	}
	return leading
}

// ListByMember returns the projects the username is a member of
func (r *sessionProjectRepository) ListByMember(username string) []*models.Project {
	working := []*models.Project{}
	for _, p := range r.session.projects {
		if p.HasMember(username) {
			working = append(working, p)
		}
	}
	return working
}

// Delete removes the project with the given ID
func (r *sessionProjectRepository) Delete(id string) error {
	for i, p := range r.session.projects {
		if p.ID == id {
			r.session.projects = append(r.session.projects[:i], r.session.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
