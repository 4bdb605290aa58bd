// Package storage reads and writes the single JSON document that holds
// the whole graph: users, projects, their tasks and comments. There is no
// incremental persistence; every save rewrites the file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arminhz/taskban/internal/models"
)

type document struct {
	Users    []*models.User    `json:"users"`
	Projects []*models.Project `json:"projects"`
}

// Load parses the data document at path. A missing file is the single
// non-fatal case and yields empty collections; malformed JSON, unknown
// fields, trailing content, and invalid enum values all propagate.
func Load(path string) ([]*models.User, []*models.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.User{}, []*models.Project{}, nil
		}
		return nil, nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var doc document
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, nil, fmt.Errorf("decode %s: trailing content", path)
	}

	if doc.Users == nil {
		doc.Users = []*models.User{}
	}
	if doc.Projects == nil {
		doc.Projects = []*models.Project{}
	}
	for _, p := range doc.Projects {
		normalizeProject(p)
	}
	return doc.Users, doc.Projects, nil
}

// Save serializes every user and every project, including nested tasks and
// comments, and replaces the file through a temp-file rename so a crash
// mid-write cannot leave a truncated document behind.
func Save(path string, users []*models.User, projects []*models.Project) error {
	doc := document{Users: users, Projects: projects}
	if doc.Users == nil {
		doc.Users = []*models.User{}
	}
	if doc.Projects == nil {
		doc.Projects = []*models.Project{}
	}
	for _, p := range doc.Projects {
		normalizeProject(p)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data document: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// normalizeProject keeps the on-disk shape stable: lists serialize as []
// rather than null.
func normalizeProject(p *models.Project) {
	if p.Members == nil {
		p.Members = []string{}
	}
	if p.Tasks == nil {
		p.Tasks = []*models.Task{}
	}
	for _, t := range p.Tasks {
		if t.Assignees == nil {
			t.Assignees = []string{}
		}
		if t.Comments == nil {
			t.Comments = []models.Comment{}
		}
	}
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}

// Purge removes the data file. A missing file is reported as an error so
// the caller can tell the user nothing was deleted.
func Purge(path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.New("no data file to purge")
		}
		return fmt.Errorf("purge data file: %w", err)
	}
	return nil
}
