package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusBacklog  TaskStatus = "BACKLOG"
	TaskStatusTodo     TaskStatus = "TODO"
	TaskStatusDoing    TaskStatus = "DOING"
	TaskStatusDone     TaskStatus = "DONE"
	TaskStatusArchived TaskStatus = "ARCHIVED"
)

type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "CRITICAL"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityLow      TaskPriority = "LOW"
)

var (
	ErrInvalidStatus   = errors.New("unknown task status")
	ErrInvalidPriority = errors.New("unknown task priority")
)

// ParseTaskStatus converts a string into a TaskStatus, rejecting values
// outside the closed set.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusDoing, TaskStatusDone, TaskStatusArchived:
		return true
	}
	return false
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseTaskPriority converts a string into a TaskPriority, rejecting values
// outside the closed set.
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return priority, nil
}

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityCritical, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

func (p *TaskPriority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskPriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Task belongs to exactly one project. Assignees are usernames, not user
// references; they are resolved against the identity store when needed.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Assignees   []string     `json:"assignees"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	StartTime   time.Time    `json:"start_time"`
	EndDate     time.Time    `json:"end_date"`
	Description string       `json:"description"`
	Comments    []Comment    `json:"comments"`
}

// NewTask builds a task with the given attributes. Priority defaults to LOW
// and status to BACKLOG when left empty. EndDate is fixed at one day after
// creation and no operation changes it afterwards; the field is kept for
// data compatibility.
func NewTask(id, title string, assignees []string, priority TaskPriority, status TaskStatus, description string) *Task {
	if priority == "" {
		priority = TaskPriorityLow
	}
	if status == "" {
		status = TaskStatusBacklog
	}
	if assignees == nil {
		assignees = []string{}
	}
	now := time.Now()
	return &Task{
		ID:          id,
		Title:       title,
		Assignees:   assignees,
		Priority:    priority,
		Status:      status,
		StartTime:   now,
		EndDate:     now.Add(24 * time.Hour),
		Description: description,
		Comments:    []Comment{},
	}
}

// AddComment appends a comment with index = current count + 1.
func (t *Task) AddComment(author, content string) Comment {
	comment := Comment{
		Index:   len(t.Comments) + 1,
		Author:  author,
		Time:    time.Now(),
		Content: content,
	}
	t.Comments = append(t.Comments, comment)
	return comment
}

// RemoveComment drops every comment whose stored index equals idx and
// reports whether anything was removed. The match is on the index field,
// not the slice position: indices are never renumbered, so after a removal
// they are non-contiguous and a later insertion can repeat one.
func (t *Task) RemoveComment(idx int) bool {
	kept := make([]Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		if c.Index != idx {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(t.Comments) {
		return false
	}
	t.Comments = kept
	return true
}

// HasComment reports whether any comment carries the given index.
func (t *Task) HasComment(idx int) bool {
	for _, c := range t.Comments {
		if c.Index == idx {
			return true
		}
	}
	return false
}

// AddAssignee appends a username. There is no duplicate check; assigning
// the same user twice stores them twice.
func (t *Task) AddAssignee(username string) {
	t.Assignees = append(t.Assignees, username)
}

// RemoveAssignee drops every occurrence of the username and reports
// whether any matched.
func (t *Task) RemoveAssignee(username string) bool {
	kept := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		if a != username {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(t.Assignees) {
		return false
	}
	t.Assignees = kept
	return true
}

// IsAssignee reports whether the username appears in the assignee list.
func (t *Task) IsAssignee(username string) bool {
	for _, a := range t.Assignees {
		if a == username {
			return true
		}
	}
	return false
}
