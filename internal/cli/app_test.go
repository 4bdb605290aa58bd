package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arminhz/taskban/internal/logging"
	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/arminhz/taskban/internal/services"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	auth     *services.AuthService
	projects *services.ProjectService
	tasks    *services.TaskService
}

// newTestApp builds an App over a throwaway store, fed by the scripted
// input. Output goes to the returned buffer.
func newTestApp(t *testing.T, script string) (*App, *bytes.Buffer, *cliEnv) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	session, err := repository.Open(path)
	require.NoError(t, err)

	log := logging.Discard()
	env := &cliEnv{
		auth:     services.NewAuthService(session.Users(), session, log),
		projects: services.NewProjectService(session.Projects(), session.Users(), session, log),
		tasks:    services.NewTaskService(session.Projects(), session.Users(), session, log),
	}

	out := &bytes.Buffer{}
	app := New(strings.NewReader(script), out, env.auth, env.projects, env.tasks)
	return app, out, env
}

func seedUser(t *testing.T, env *cliEnv, username string) {
	t.Helper()
	_, err := env.auth.Register(services.RegisterInput{
		Email:    username + "@example.com",
		Username: username,
		Password: "password",
	})
	require.NoError(t, err)
}

func TestRegisterLoginLogoutQuit(t *testing.T) {
	script := "1\n" +
		"short\n" + // rejected before hitting the service
		"alice@example.com\n" +
		"alice\n" +
		"secretpw\n" +
		"2\nalice\nsecretpw\n" +
		"3\n" + // logout
		"3\n" // quit
	app, out, _ := newTestApp(t, script)

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "Email must be at least 10 characters long and contain '@'.")
	require.Contains(t, out.String(), "User registered successfully!")
	require.Contains(t, out.String(), "Logged in successfully as alice!")
}

func TestRegisterReportsDuplicates(t *testing.T) {
	app, out, env := newTestApp(t, "1\nalice@example.com\nalice\npw\n3\n")
	seedUser(t, env, "alice")

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "Duplicate email or username. Please choose another one.")
}

func TestLoginWithWrongPassword(t *testing.T) {
	app, out, env := newTestApp(t, "2\nalice\nwrong\n3\n")
	seedUser(t, env, "alice")

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "Invalid username or password.")
	require.NotContains(t, out.String(), "Logged in successfully")
}

func TestLoginWithUnknownUsername(t *testing.T) {
	app, out, _ := newTestApp(t, "2\nnobody\npassword\n3\n")

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "Invalid username or password.")
}

func TestLoginDisabledUser(t *testing.T) {
	app, out, env := newTestApp(t, "2\nalice\npassword\n3\n")
	seedUser(t, env, "alice")
	require.NoError(t, env.auth.DeactivateUser("alice"))

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "user was disabled!")
}

func TestRunEndsCleanlyOnEndOfInput(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	require.NoError(t, app.Run())
}

func TestProjectAndTaskFlow(t *testing.T) {
	script := "2\nalice\npassword\n" + // login
		"1\np1\nApollo\n" + // create project
		"1\nbob\n" + // add member
		"4\n" + // back to session menu
		"2\nApollo\n" + // view projects, pick by title
		"1\n" + // create task
		"Design\nFirst cut\n" +
		"bob\ndone\n" + // one assignee, then finish
		"\n\n" + // default priority and status
		"3\n" + // back out of the project menu
		"3\n" + // logout
		"3\n" // quit
	app, out, env := newTestApp(t, script)
	seedUser(t, env, "alice")
	seedUser(t, env, "bob")

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "Project created successfully!")
	require.Contains(t, out.String(), "User bob added to the project!")
	require.Contains(t, out.String(), "Task created successfully!")

	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, project.Members)
	require.Len(t, project.Tasks, 1)

	task := project.Tasks[0]
	require.Equal(t, "Design", task.Title)
	require.Equal(t, "First cut", task.Description)
	require.Equal(t, []string{"bob"}, task.Assignees)
	require.Equal(t, models.TaskPriorityLow, task.Priority)
	require.Equal(t, models.TaskStatusBacklog, task.Status)
}

func TestCreateTaskFlowRejectsUnknownAssignee(t *testing.T) {
	script := "2\nalice\npassword\n" +
		"1\np1\nApollo\n4\n" +
		"2\nApollo\n" +
		"1\nDesign\n\n" +
		"ghost\ndone\n" + // unknown, skipped with a message
		"\n\n" +
		"3\n3\n3\n"
	app, out, env := newTestApp(t, script)
	seedUser(t, env, "alice")

	require.NoError(t, app.Run())
	require.Contains(t, out.String(), "User not found.")

	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)
	require.Len(t, project.Tasks, 1)
	require.Empty(t, project.Tasks[0].Assignees)
}

func TestViewTaskFlowDeniesNonAssignee(t *testing.T) {
	app, out, env := newTestApp(t, "")
	seedUser(t, env, "alice")
	seedUser(t, env, "carol")

	_, err := env.projects.CreateProject("p1", "Apollo", "alice")
	require.NoError(t, err)
	require.NoError(t, env.projects.AddMember("p1", "alice", "carol"))
	task, err := env.tasks.CreateTask(services.CreateTaskInput{
		ProjectID: "p1", Actor: "alice", Title: "Design",
	})
	require.NoError(t, err)

	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)

	carol, err := env.auth.Login("carol", "password")
	require.NoError(t, err)
	app.prompter = newPrompter(strings.NewReader(task.ID+"\nexit\n"), out)
	app.current = carol

	require.NoError(t, app.viewTaskFlow(project))
	require.Contains(t, out.String(), "You are not an assignee of this task. Access denied.")
}

func TestTaskMenuEditsAttributes(t *testing.T) {
	app, out, env := newTestApp(t, "")
	seedUser(t, env, "alice")

	_, err := env.projects.CreateProject("p1", "Apollo", "alice")
	require.NoError(t, err)
	task, err := env.tasks.CreateTask(services.CreateTaskInput{
		ProjectID: "p1", Actor: "alice", Title: "Design",
	})
	require.NoError(t, err)
	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)

	alice, err := env.auth.Login("alice", "password")
	require.NoError(t, err)
	script := "1\nDesign v2\n" + // change title
		"4\nHIGH\n" + // change priority
		"5\nDOING\n" + // change status
		"9\n"
	app.prompter = newPrompter(strings.NewReader(script), out)
	app.current = alice

	require.NoError(t, app.taskMenu(project, task))
	require.Contains(t, out.String(), "Task attributes updated successfully!")
	require.Equal(t, "Design v2", task.Title)
	require.Equal(t, models.TaskPriorityHigh, task.Priority)
	require.Equal(t, models.TaskStatusDoing, task.Status)
}

func TestTaskMenuComments(t *testing.T) {
	app, out, env := newTestApp(t, "")
	seedUser(t, env, "alice")

	_, err := env.projects.CreateProject("p1", "Apollo", "alice")
	require.NoError(t, err)
	task, err := env.tasks.CreateTask(services.CreateTaskInput{
		ProjectID: "p1", Actor: "alice", Title: "Design",
	})
	require.NoError(t, err)
	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)

	alice, err := env.auth.Login("alice", "password")
	require.NoError(t, err)
	script := "6\nlooks good\n" + // add comment
		"7\n1\n" + // delete it by index
		"7\nnot-a-number\n" + // rejected before the service
		"9\n"
	app.prompter = newPrompter(strings.NewReader(script), out)
	app.current = alice

	require.NoError(t, app.taskMenu(project, task))
	require.Contains(t, out.String(), "Comment added successfully!")
	require.Contains(t, out.String(), "Comment removed successfully.")
	require.Contains(t, out.String(), "Comment not found.")
	require.Empty(t, task.Comments)
}

func TestTaskMenuDeleteTask(t *testing.T) {
	app, out, env := newTestApp(t, "")
	seedUser(t, env, "alice")

	_, err := env.projects.CreateProject("p1", "Apollo", "alice")
	require.NoError(t, err)
	task, err := env.tasks.CreateTask(services.CreateTaskInput{
		ProjectID: "p1", Actor: "alice", Title: "Design",
	})
	require.NoError(t, err)
	project, err := env.projects.GetProject("p1")
	require.NoError(t, err)

	alice, err := env.auth.Login("alice", "password")
	require.NoError(t, err)
	app.prompter = newPrompter(strings.NewReader("8\n"), out)
	app.current = alice

	require.NoError(t, app.taskMenu(project, task))
	require.Contains(t, out.String(), "Task deleted successfully!")
	require.Empty(t, project.Tasks)
}
