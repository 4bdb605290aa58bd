package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProjectStartsWithCreatorAsOnlyMember(t *testing.T) {
	project := NewProject("1", "Test Project", "alice")

	require.Equal(t, []string{"alice"}, project.Members)
	require.True(t, project.HasMember("alice"))
	require.NotNil(t, project.Tasks)
	require.Empty(t, project.Tasks)
}

func TestAddAndRemoveMember(t *testing.T) {
	project := NewProject("1", "Test Project", "alice")

	project.AddMember("bob")
	require.Equal(t, []string{"alice", "bob"}, project.Members)

	require.True(t, project.RemoveMember("bob"))
	require.False(t, project.HasMember("bob"))
	require.False(t, project.RemoveMember("bob"))
}

// Removing the creator succeeds; nothing guards against it.
func TestRemoveMemberDoesNotProtectCreator(t *testing.T) {
	project := NewProject("1", "Test Project", "alice")

	require.True(t, project.RemoveMember("alice"))
	require.Empty(t, project.Members)
	require.Equal(t, "alice", project.Creator)
}

func TestFindAndRemoveTask(t *testing.T) {
	project := NewProject("1", "Test Project", "alice")
	task := NewTask("t1", "Write docs", nil, "", "", "")
	project.AddTask(task)

	require.Same(t, task, project.FindTask("t1"))
	require.Nil(t, project.FindTask("missing"))

	require.False(t, project.RemoveTask("missing"))
	require.True(t, project.RemoveTask("t1"))
	require.Empty(t, project.Tasks)
}
