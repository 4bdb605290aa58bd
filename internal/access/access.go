// Package access holds the authorization predicates for projects and
// tasks. They are pure functions over the denormalized username strings;
// callers resolve usernames against the identity store separately.
package access

import "github.com/arminhz/taskban/internal/models"

// IsCreator reports whether the username originated the project.
func IsCreator(p *models.Project, username string) bool {
	return p.Creator == username
}

// IsMember reports whether the username is in the project's member list.
func IsMember(p *models.Project, username string) bool {
	return p.HasMember(username)
}

// CanManageProject reports whether the username may add or remove members,
// delete the project, create tasks, or assign users to tasks. Only the
// creator holds management rights.
func CanManageProject(p *models.Project, username string) bool {
	return IsCreator(p, username)
}

// CanViewTask reports whether the username may see the task: the project
// creator and the task's assignees, nobody else.
func CanViewTask(p *models.Project, t *models.Task, username string) bool {
	return IsCreator(p, username) || t.IsAssignee(username)
}

// CanEditTask reports whether the username may change the task's title,
// priority, status, or comments. Everyone who can view the task can edit
// its attributes; only the creator may add assignees.
func CanEditTask(p *models.Project, t *models.Task, username string) bool {
	return CanViewTask(p, t, username)
}
