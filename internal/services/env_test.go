package services

import (
	"path/filepath"
	"testing"

	"github.com/arminhz/taskban/internal/logging"
	"github.com/arminhz/taskban/internal/models"
	"github.com/arminhz/taskban/internal/repository"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	path     string
	session  *repository.Session
	auth     *AuthService
	projects *ProjectService
	tasks    *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	session, err := repository.Open(path)
	require.NoError(t, err)

	log := logging.Discard()
	return &testEnv{
		path:     path,
		session:  session,
		auth:     NewAuthService(session.Users(), session, log),
		projects: NewProjectService(session.Projects(), session.Users(), session, log),
		tasks:    NewTaskService(session.Projects(), session.Users(), session, log),
	}
}

func (e *testEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.auth.Register(RegisterInput{
		Email:    username + "@example.com",
		Username: username,
		Password: "password",
	})
	require.NoError(t, err)
	return user
}
