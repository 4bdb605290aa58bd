package models

// Project groups tasks under a creator and a member list. Creator and
// members are usernames; authorization compares these strings, it never
// holds user references.
type Project struct {
	ID      string   `json:"project_id"`
	Title   string   `json:"title"`
	Creator string   `json:"creator"`
	Members []string `json:"members"`
	Tasks   []*Task  `json:"tasks"`
}

// NewProject builds a project whose member list starts with the creator.
// The project ID is supplied by the caller.
func NewProject(id, title, creator string) *Project {
	return &Project{
		ID:      id,
		Title:   title,
		Creator: creator,
		Members: []string{creator},
		Tasks:   []*Task{},
	}
}

// AddMember appends a username to the member list.
func (p *Project) AddMember(username string) {
	p.Members = append(p.Members, username)
}

// RemoveMember drops the username from the member list and reports whether
// it was present. Removing the creator is not prevented.
func (p *Project) RemoveMember(username string) bool {
	kept := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		if m != username {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(p.Members) {
		return false
	}
	p.Members = kept
	return true
}

// HasMember reports whether the username is in the member list.
func (p *Project) HasMember(username string) bool {
	for _, m := range p.Members {
		if m == username {
			return true
		}
	}
	return false
}

// AddTask appends a task to the project.
func (p *Project) AddTask(t *Task) {
	p.Tasks = append(p.Tasks, t)
}

// FindTask returns the task with the given ID, or nil.
func (p *Project) FindTask(id string) *Task {
	for _, t := range p.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTask drops the first task with the given ID and reports whether
// one was found.
func (p *Project) RemoveTask(id string) bool {
	for i, t := range p.Tasks {
		if t.ID == id {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
