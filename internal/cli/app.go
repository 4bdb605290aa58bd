// Package cli implements the interactive terminal front end. It prompts,
// renders tables, and translates service errors into user messages; all
// business rules live in the services.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/services"
)

// errQuit unwinds the menu loop when the user picks Quit.
var errQuit = errors.New("quit")

// App drives the tracker's interactive session. There is one logged-in
// user at a time; current is nil before login and after logout.
type App struct {
	prompter
	auth     *services.AuthService
	projects *services.ProjectService
	tasks    *services.TaskService
	current  *models.User
}

// New wires the interactive tracker against the given services.
func New(in io.Reader, out io.Writer, auth *services.AuthService, projects *services.ProjectService, tasks *services.TaskService) *App {
	return &App{
		prompter: newPrompter(in, out),
		auth:     auth,
		projects: projects,
		tasks:    tasks,
	}
}

// Run loops over the menus until the user quits or input ends.
func (a *App) Run() error {
	for {
		var err error
		if a.current == nil {
			err = a.welcomeMenu()
		} else {
			err = a.sessionMenu()
		}
		if err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (a *App) welcomeMenu() error {
	fmt.Fprintln(a.out, "Welcome to the Application!")
	choice, err := a.promptChoice("Select an option: (1) Register, (2) Login, (3) Quit", "1", "2", "3")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return a.register()
	case "2":
		return a.login()
	default:
		return errQuit
	}
}

func (a *App) register() error {
	var email string
	for {
		var err error
		email, err = a.prompt("Enter your email:")
		if err != nil {
			return err
		}
		if len(email) >= 10 && strings.Contains(email, "@") {
			break
		}
		a.fail("Email must be at least 10 characters long and contain '@'.")
	}

	username, err := a.prompt("Enter your username:")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter your password:")
	if err != nil {
		return err
	}

	if _, err := a.auth.Register(services.RegisterInput{
		Email:    email,
		Username: username,
		Password: password,
	}); err != nil {
		if errors.Is(err, services.ErrDuplicateIdentity) {
			a.fail("Duplicate email or username. Please choose another one.")
		} else {
			a.fail("%v", err)
		}
		return nil
	}
	a.success("User registered successfully!")
	return nil
}

func (a *App) login() error {
	username, err := a.prompt("Enter your username:")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter your password:")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(username, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserDisabled):
			a.fail("user was disabled!")
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrWrongPassword):
			// Presented identically; the log distinguishes them.
			a.fail("Invalid username or password.")
		default:
			a.fail("%v", err)
		}
		return nil
	}
	a.current = user
	a.success("Logged in successfully as %s!", user.Username)
	return nil
}

func (a *App) sessionMenu() error {
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.current.Username)
	choice, err := a.promptChoice("Select an option: (1) Create Project, (2) View Projects, (3) Logout", "1", "2", "3")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return a.createProjectFlow()
	case "2":
		return a.viewProjectsFlow()
	default:
		a.current = nil
		return nil
	}
}

func (a *App) createProjectFlow() error {
	id, err := a.prompt("Enter project ID:")
	if err != nil {
		return err
	}
	title, err := a.prompt("Enter project name:")
	if err != nil {
		return err
	}

	project, err := a.projects.CreateProject(id, title, a.current.Username)
	if err != nil {
		if errors.Is(err, services.ErrProjectTitleTaken) {
			a.fail("Project with this name already exists")
		} else {
			a.fail("%v", err)
		}
		return nil
	}
	a.success("Project created successfully!")

	for {
		action, err := a.promptChoice("Select an action: (1) Add Member, (2) Remove Member, (3) Delete Project, (4) Back", "1", "2", "3", "4")
		if err != nil {
			return err
		}
		switch action {
		case "1":
			if err := a.addMember(project.ID); err != nil {
				return err
			}
		case "2":
			if err := a.removeMember(project.ID); err != nil {
				return err
			}
		case "3":
			if err := a.projects.DeleteProject(project.ID, a.current.Username); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Project deleted successfully!")
			}
			return nil
		case "4":
			return nil
		}
	}
}

func (a *App) addMember(projectID string) error {
	username, err := a.prompt("Enter username to add to the project:")
	if err != nil {
		return err
	}
	switch err := a.projects.AddMember(projectID, a.current.Username, username); {
	case errors.Is(err, services.ErrUserNotFound):
		a.fail("user not found")
	case errors.Is(err, services.ErrAlreadyMember):
		a.fail("user is already a member of the project")
	case err != nil:
		a.fail("%v", err)
	default:
		a.success("User %s added to the project!", username)
	}
	return nil
}

func (a *App) removeMember(projectID string) error {
	username, err := a.prompt("Enter username to remove from the project:")
	if err != nil {
		return err
	}
	switch err := a.projects.RemoveMember(projectID, a.current.Username, username); {
	case errors.Is(err, services.ErrNotAMember):
		a.fail("User not found in the project.")
	case err != nil:
		a.fail("%v", err)
	default:
		a.success("User %s removed from the project!", username)
	}
	return nil
}

func (a *App) viewProjectsFlow() error {
	leading := a.projects.ListLeading(a.current.Username)
	working := a.projects.ListWorkingOn(a.current.Username)

	a.renderProjectsTable("Projects Leading", leading)
	a.renderProjectsTable("Projects Working On", working)

	if len(working) == 0 {
		a.fail("You are not working on any project.")
		return nil
	}

	title, err := a.prompt("Select a project by title:")
	if err != nil {
		return err
	}
	var selected *models.Project
	for _, p := range working {
		if p.Title == title {
			selected = p
			break
		}
	}
	if selected == nil {
		a.fail("Project not found.")
		return nil
	}
	return a.projectMenu(selected)
}

func (a *App) projectMenu(project *models.Project) error {
	for {
		a.renderTasksTable(project)
		action, err := a.promptChoice("Select an action: (1) Create Task, (2) View Tasks, (3) Back", "1", "2", "3")
		if err != nil {
			return err
		}
		switch action {
		case "1":
			if err := a.createTaskFlow(project); err != nil {
				return err
			}
		case "2":
			if err := a.viewTaskFlow(project); err != nil {
				return err
			}
		case "3":
			return nil
		}
	}
}

func (a *App) createTaskFlow(project *models.Project) error {
	title, err := a.prompt("Enter task title:")
	if err != nil {
		return err
	}
	description, err := a.prompt("Enter task description:")
	if err != nil {
		return err
	}

	assignees := []string{}
	for {
		name, err := a.prompt("Enter username of assignee (or type 'done' to finish adding assignees):")
		if err != nil {
			return err
		}
		if name == "done" {
			break
		}
		if !a.auth.UserExists(name) {
			a.fail("User not found.")
			continue
		}
		assignees = append(assignees, name)
	}

	priorityRaw, err := a.promptChoiceDefault("Enter task priority (CRITICAL, HIGH, MEDIUM, LOW):", string(models.TaskPriorityLow),
		"CRITICAL", "HIGH", "MEDIUM", "LOW")
	if err != nil {
		return err
	}
	statusRaw, err := a.promptChoiceDefault("Enter task status (BACKLOG, TODO, DOING, DONE, ARCHIVED):", string(models.TaskStatusBacklog),
		"BACKLOG", "TODO", "DOING", "DONE", "ARCHIVED")
	if err != nil {
		return err
	}
	priority, err := models.ParseTaskPriority(priorityRaw)
	if err != nil {
		a.fail("%v", err)
		return nil
	}
	status, err := models.ParseTaskStatus(statusRaw)
	if err != nil {
		a.fail("%v", err)
		return nil
	}

	if _, err := a.tasks.CreateTask(services.CreateTaskInput{
		ProjectID:   project.ID,
		Actor:       a.current.Username,
		Title:       title,
		Assignees:   assignees,
		Priority:    priority,
		Status:      status,
		Description: description,
	}); err != nil {
		if errors.Is(err, services.ErrNotCreator) {
			a.fail("You are not the project manager!")
		} else {
			a.fail("%v", err)
		}
		return nil
	}
	a.success("Task created successfully!")
	return nil
}

func (a *App) viewTaskFlow(project *models.Project) error {
	for {
		taskID, err := a.prompt("Select a task ID to view details (or type 'exit' to go back):")
		if err != nil {
			return err
		}
		if taskID == "exit" {
			return nil
		}

		task, err := a.tasks.GetTask(project.ID, taskID, a.current.Username)
		switch {
		case errors.Is(err, services.ErrTaskAccessDenied):
			a.fail("You are not an assignee of this task. Access denied.")
			continue
		case errors.Is(err, services.ErrTaskNotFound):
			a.fail("Task not found.")
			continue
		case err != nil:
			a.fail("%v", err)
			continue
		}

		a.renderTaskDetails(task)
		if err := a.taskMenu(project, task); err != nil {
			return err
		}
	}
}

func (a *App) taskMenu(project *models.Project, task *models.Task) error {
	for {
		fmt.Fprintln(a.out, "Select an attribute to modify:")
		fmt.Fprintln(a.out, "1. Change Title")
		fmt.Fprintln(a.out, "2. Add Assignee")
		fmt.Fprintln(a.out, "3. Remove Assignee")
		fmt.Fprintln(a.out, "4. Change Priority")
		fmt.Fprintln(a.out, "5. Change Status")
		fmt.Fprintln(a.out, "6. Add Comment")
		fmt.Fprintln(a.out, "7. Delete Comment")
		fmt.Fprintln(a.out, "8. Delete Task")
		fmt.Fprintln(a.out, "9. Back")

		choice, err := a.promptChoice("Enter your choice:", "1", "2", "3", "4", "5", "6", "7", "8", "9")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			title, err := a.prompt("Enter new title:")
			if err != nil {
				return err
			}
			if err := a.tasks.UpdateTitle(project.ID, task.ID, a.current.Username, title); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Task attributes updated successfully!")
			}
		case "2":
			username, err := a.prompt("Enter new username:")
			if err != nil {
				return err
			}
			switch err := a.tasks.AddAssignee(project.ID, task.ID, a.current.Username, username); {
			case errors.Is(err, services.ErrNotCreator):
				a.fail("Only the project creator can assign tasks to users. Access denied.")
			case errors.Is(err, services.ErrUserNotFound):
				a.fail("user not found.")
			case errors.Is(err, services.ErrNotAMember):
				a.fail("user is not a member of the project.")
			case err != nil:
				a.fail("%v", err)
			default:
				a.success("User %s added to the task!", username)
			}
		case "3":
			username, err := a.prompt("Enter username to remove from the task:")
			if err != nil {
				return err
			}
			switch err := a.tasks.RemoveAssignee(project.ID, task.ID, a.current.Username, username); {
			case errors.Is(err, services.ErrAssigneeNotFound):
				a.fail("User not found in the task.")
			case err != nil:
				a.fail("%v", err)
			default:
				a.success("User %s removed from the task!", username)
			}
		case "4":
			raw, err := a.promptChoice("Enter task priority (CRITICAL, HIGH, MEDIUM, LOW):", "CRITICAL", "HIGH", "MEDIUM", "LOW")
			if err != nil {
				return err
			}
			if err := a.tasks.UpdatePriority(project.ID, task.ID, a.current.Username, models.TaskPriority(raw)); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Task attributes updated successfully!")
			}
		case "5":
			raw, err := a.promptChoice("Enter task status (BACKLOG, TODO, DOING, DONE, ARCHIVED):", "BACKLOG", "TODO", "DOING", "DONE", "ARCHIVED")
			if err != nil {
				return err
			}
			if err := a.tasks.UpdateStatus(project.ID, task.ID, a.current.Username, models.TaskStatus(raw)); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Task attributes updated successfully!")
			}
		case "6":
			a.renderCommentsTable(task)
			content, err := a.prompt("Enter comment:")
			if err != nil {
				return err
			}
			if _, err := a.tasks.AddComment(project.ID, task.ID, a.current.Username, content); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Comment added successfully!")
			}
		case "7":
			a.renderCommentsTable(task)
			raw, err := a.prompt("Select a comment to remove:")
			if err != nil {
				return err
			}
			index, convErr := strconv.Atoi(raw)
			if convErr != nil {
				a.fail("Comment not found.")
				continue
			}
			switch err := a.tasks.RemoveComment(project.ID, task.ID, a.current.Username, index); {
			case errors.Is(err, services.ErrCommentNotFound):
				a.fail("Comment not found.")
			case err != nil:
				a.fail("%v", err)
			default:
				a.success("Comment removed successfully.")
			}
		case "8":
			if err := a.tasks.DeleteTask(project.ID, task.ID, a.current.Username); err != nil {
				a.fail("%v", err)
			} else {
				a.success("Task deleted successfully!")
			}
			return nil
		case "9":
			return nil
		}
	}
}
