package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arminhz/taskban/internal/access"
	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/arminhz/taskban/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrTaskAccessDenied  = errors.New("only the project creator and task assignees can access this task")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrAssigneeNotFound  = errors.New("user is not assigned to this task")
)

// TaskService handles task business logic: creation, attribute edits,
// assignees, and comments, with the authorization checks in front.
type TaskService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	session  repository.Flusher
	log      *logrus.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(projects repository.ProjectRepository, users repository.UserRepository, session repository.Flusher, log *logrus.Logger) *TaskService {
	return &TaskService{
		projects: projects,
		users:    users,
		session:  session,
		log:      log,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	ProjectID   string
	Actor       string
	Title       string
	Assignees   []string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	Description string
}

// CreateTask creates a task inside a project. Only the creator may do
// this. Every initial assignee must be a registered user. Priority and
// status default to LOW and BACKLOG.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitleRequired
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, string(input.Priority))
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, string(input.Status))
	}

	project, err := s.project(input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !access.CanManageProject(project, input.Actor) {
		return nil, ErrNotCreator
	}
	for _, assignee := range input.Assignees {
		if !s.users.ExistsUsername(assignee) {
			return nil, ErrUserNotFound
		}
	}

	task := models.NewTask(utils.NewTaskID(), input.Title, input.Assignees, input.Priority, input.Status, input.Description)
	project.AddTask(task)
	if err := s.session.Flush(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"task":    task.Title,
		"project": project.Title,
		"creator": input.Actor,
	}).Info("task created")
	return task, nil
}

// GetTask returns a task if the actor may view it: the project creator or
// one of the task's assignees.
func (s *TaskService) GetTask(projectID, taskID, actor string) (*models.Task, error) {
	project, task, err := s.find(projectID, taskID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewTask(project, task, actor) {
		return nil, ErrTaskAccessDenied
	}
	return task, nil
}

// UpdateTitle changes the task title.
func (s *TaskService) UpdateTitle(projectID, taskID, actor, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTaskTitleRequired
	}
	project, task, err := s.editable(projectID, taskID, actor)
	if err != nil {
		return err
	}

	task.Title = title
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":    task.ID,
		"project": project.Title,
		"title":   title,
		"actor":   actor,
	}).Info("task title changed")
	return nil
}

// UpdatePriority changes the task priority. Unknown values are rejected,
// never stored.
func (s *TaskService) UpdatePriority(projectID, taskID, actor string, priority models.TaskPriority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPriority, string(priority))
	}
	_, task, err := s.editable(projectID, taskID, actor)
	if err != nil {
		return err
	}

	task.Priority = priority
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":     task.ID,
		"priority": priority,
		"actor":    actor,
	}).Info("task priority changed")
	return nil
}

// UpdateStatus changes the task status. Unknown values are rejected,
// never stored.
func (s *TaskService) UpdateStatus(projectID, taskID, actor string, status models.TaskStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, string(status))
	}
	_, task, err := s.editable(projectID, taskID, actor)
	if err != nil {
		return err
	}

	task.Status = status
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":   task.ID,
		"status": status,
		"actor":  actor,
	}).Info("task status changed")
	return nil
}

// AddAssignee attaches a username to the task. Only the project creator
// may assign. The check runs in two stages with distinct failures: the
// username must be a registered user, then a member of the project. The
// append itself is unchecked, so assigning twice stores a duplicate.
func (s *TaskService) AddAssignee(projectID, taskID, actor, username string) error {
	project, task, err := s.find(projectID, taskID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}
	if !s.users.ExistsUsername(username) {
		return ErrUserNotFound
	}
	if !access.IsMember(project, username) {
		return ErrNotAMember
	}

	task.AddAssignee(username)
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":     task.Title,
		"username": username,
		"actor":    actor,
	}).Info("assignee added to task")
	return nil
}

// RemoveAssignee drops every occurrence of the username from the task.
func (s *TaskService) RemoveAssignee(projectID, taskID, actor, username string) error {
	project, task, err := s.find(projectID, taskID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}
	if !task.RemoveAssignee(username) {
		return ErrAssigneeNotFound
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":     task.Title,
		"username": username,
	}).Info("assignee removed from task")
	return nil
}

// AddComment appends a comment authored by the actor.
func (s *TaskService) AddComment(projectID, taskID, actor, content string) (models.Comment, error) {
	_, task, err := s.editable(projectID, taskID, actor)
	if err != nil {
		return models.Comment{}, err
	}

	comment := task.AddComment(actor, content)
	if err := s.session.Flush(); err != nil {
		return models.Comment{}, err
	}

	s.log.WithFields(logrus.Fields{
		"task":   task.Title,
		"author": actor,
	}).Info("comment added to task")
	return comment, nil
}

// RemoveComment drops the comment carrying the given stored index.
func (s *TaskService) RemoveComment(projectID, taskID, actor string, index int) error {
	_, task, err := s.editable(projectID, taskID, actor)
	if err != nil {
		return err
	}
	if !task.RemoveComment(index) {
		return ErrCommentNotFound
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":  task.Title,
		"index": index,
		"actor": actor,
	}).Info("comment removed from task")
	return nil
}

// DeleteTask removes a task from its project. Creator only.
func (s *TaskService) DeleteTask(projectID, taskID, actor string) error {
	project, err := s.project(projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(project, actor) {
		return ErrNotCreator
	}
	if !project.RemoveTask(taskID) {
		return ErrTaskNotFound
	}
	if err := s.session.Flush(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"task":    taskID,
		"project": project.Title,
	}).Info("task deleted")
	return nil
}

func (s *TaskService) project(projectID string) (*models.Project, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (s *TaskService) find(projectID, taskID string) (*models.Project, *models.Task, error) {
	project, err := s.project(projectID)
	if err != nil {
		return nil, nil, err
	}
	task := project.FindTask(taskID)
	if task == nil {
		return nil, nil, ErrTaskNotFound
	}
	return project, task, nil
}

// editable resolves a task and verifies the actor may edit its
// attributes. Edit rights follow view rights.
func (s *TaskService) editable(projectID, taskID, actor string) (*models.Project, *models.Task, error) {
	project, task, err := s.find(projectID, taskID)
	if err != nil {
		return nil, nil, err
	}
	if !access.CanEditTask(project, task, actor) {
		return nil, nil, ErrTaskAccessDenied
	}
	return project, task, nil
}
