package repository

import "github.com/arminhz/taskban/internal/models"

// sessionUserRepository is the in-memory implementation of UserRepository
// backed by a Session.
type sessionUserRepository struct {
	session *Session
}

// Create adds a new user
func (r *sessionUserRepository) Create(user *models.User) error {
	r.session.users = append(r.session.users, user)
	return nil
}

// FindByUsername finds a user by exact username match
func (r *sessionUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.session.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// FindByEmail finds a user by exact email match
func (r *sessionUserRepository) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.session.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// ExistsUsername reports whether the username is registered
func (r *sessionUserRepository) ExistsUsername(username string) bool {
	_, err := r.FindByUsername(username)
	return err == nil
}

// ExistsEmail reports whether the email is registered
func (r *sessionUserRepository) ExistsEmail(email string) bool {
	_, err := r.FindByEmail(email)
	return err == nil
}

// List returns every user in registration order
func (r *sessionUserRepository) List() []*models.User {
	return r.session.users
}
