package models

// User is a registered account. The password field always holds a bcrypt
// digest, never the plain text.
type User struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Activated    bool   `json:"activated"`
}

// Activate enables the account so the user can log in again.
func (u *User) Activate() {
	u.Activated = true
}

// Deactivate disables the account. Login is refused for deactivated users
// regardless of the supplied password.
func (u *User) Deactivate() {
	u.Activated = false
}
