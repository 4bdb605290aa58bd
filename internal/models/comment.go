package models

import "time"

// Comment is a note attached to a task. Index is the position the comment
// had when it was inserted (1-based); it is never recomputed afterwards,
// so removing a comment leaves a gap that a later insertion can reuse.
type Comment struct {
	Index   int       `json:"index"`
	Author  string    `json:"author"`
	Time    time.Time `json:"time"`
	Content string    `json:"content"`
}
