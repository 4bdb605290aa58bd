package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arminhz/taskban/internal/models"
	"github.com/stretchr/testify/require"
)

func openTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	session, err := Open(path)
	require.NoError(t, err)
	return session, path
}

func TestSessionFlushAndReopen(t *testing.T) {
	session, path := openTestSession(t)

	require.NoError(t, session.Users().Create(&models.User{
		Email: "alice@example.com", Username: "alice", PasswordHash: "digest", Activated: true,
	}))
	require.NoError(t, session.Projects().Create(models.NewProject("p1", "Apollo", "alice")))
	require.NoError(t, session.Flush())

	reopened, err := Open(path)
	require.NoError(t, err)

	user, err := reopened.Users().FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	project, err := reopened.Projects().FindByTitle("Apollo")
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, project.Members)
}

func TestUserRepositoryLookups(t *testing.T) {
	session, _ := openTestSession(t)
	users := session.Users()

	require.NoError(t, users.Create(&models.User{
		Email: "alice@example.com", Username: "alice", PasswordHash: "digest", Activated: true,
	}))

	require.True(t, users.ExistsUsername("alice"))
	require.True(t, users.ExistsEmail("alice@example.com"))
	require.False(t, users.ExistsUsername("Alice")) // exact match only
	require.False(t, users.ExistsEmail("bob@example.com"))

	_, err := users.FindByUsername("bob")
	require.True(t, errors.Is(err, ErrNotFound))

	require.Len(t, users.List(), 1)
}

func TestProjectRepositoryListsAndDelete(t *testing.T) {
	session, _ := openTestSession(t)
	projects := session.Projects()

	apollo := models.NewProject("p1", "Apollo", "alice")
	apollo.AddMember("bob")
	require.NoError(t, projects.Create(apollo))
	require.NoError(t, projects.Create(models.NewProject("p2", "Borealis", "bob")))

	require.Len(t, projects.ListByCreator("alice"), 1)
	require.Len(t, projects.ListByMember("bob"), 2)
	require.Empty(t, projects.ListByMember("carol"))
	require.True(t, projects.ExistsTitle("Borealis"))

	require.NoError(t, projects.Delete("p1"))
	require.True(t, errors.Is(projects.Delete("p1"), ErrNotFound))
	require.Len(t, projects.List(), 1)
}
