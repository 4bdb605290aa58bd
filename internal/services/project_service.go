package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arminhz/taskban/internal/access"
	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectTitleEmpty = errors.New("project title cannot be empty")
	ErrProjectTitleTaken = errors.New("a project with this title already exists")
	ErrNotCreator        = errors.New("only the project creator can perform this action")
	ErrAlreadyMember     = errors.New("user is already a member of this project")
	ErrNotAMember        = errors.New("user is not a member of this project")
)

// ProjectService provides business logic for project and membership
// operations.
type ProjectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	session  repository.Flusher
	log      *logrus.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, session repository.Flusher, log *logrus.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		users:    users,
		session:  session,
		log:      log,
	}
}

// CreateProject creates a project whose member list starts with the
// creator. The project ID comes from the caller and is not checked for
// uniqueness; titles are.
func (s *ProjectService) CreateProject(id, title, creator string) (*models.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrProjectTitleEmpty
	}
	if s.projects.ExistsTitle(title) {
		return nil, ErrProjectTitleTaken
	}

	project := models.NewProject(id, title, creator)
	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if err := s.session.Flush(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"title":   title,
		"creator": creator,
	}).Info("project created")
	return project, nil
}

// GetProject returns the project with the given ID.
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// GetProjectByTitle returns the project with the given title.
func (s *ProjectService) GetProjectByTitle(title string) (*models.Project, error) {
	project, err := s.projects.FindByTitle(title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// ListLeading returns the projects the username created.
func (s *ProjectService) ListLeading(username string) []*models.Project {
	return s.projects.ListByCreator(username)
}

// ListWorkingOn returns the projects the username is a member of.
func (s *ProjectService) ListWorkingOn(username string) []*models.Project {
	return s.projects.ListByMember(username)
}

// AddMember adds a registered user to the project. The username must exist
// in the identity store first; membership itself is the second check.
// Only the creator may manage membership.
func (s *ProjectService) AddMember(projectID, actor, username string) error {
	project, err := s.GetProject(projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}
	if !s.users.ExistsUsername(username) {
		return ErrUserNotFound
	}
	if project.HasMember(username) {
		return ErrAlreadyMember
	}

	project.AddMember(username)
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"project":  project.Title,
		"username": username,
	}).Info("member added to project")
	return nil
}

// RemoveMember removes a username from the project's member list. There is
// no protection against removing the creator.
func (s *ProjectService) RemoveMember(projectID, actor, username string) error {
	project, err := s.GetProject(projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}
	if !project.RemoveMember(username) {
		s.log.WithFields(logrus.Fields{
			"project":  project.Title,
			"username": username,
		}).Warn("member removal failed, user not in project")
		return ErrNotAMember
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"project":  project.Title,
		"username": username,
	}).Info("member removed from project")
	return nil
}

// DeleteProject removes the project and everything it owns.
func (s *ProjectService) DeleteProject(projectID, actor string) error {
	project, err := s.GetProject(projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}

	if err := s.projects.Delete(projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithField("title", project.Title).Info("project deleted")
	return nil
}
