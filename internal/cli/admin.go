package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arminhz/taskban/internal/services"
	"github.com/arminhz/taskban/internal/storage"
)

// AdminApp drives the administrator CLI: account activation toggles, the
// users listing, the admin credentials file, and the data purge.
type AdminApp struct {
	prompter
	auth *services.AuthService
}

// NewAdmin wires the admin CLI. auth may be nil for the actions that do
// not touch the user store (create-admin, purge-data).
func NewAdmin(in io.Reader, out io.Writer, auth *services.AuthService) *AdminApp {
	return &AdminApp{
		prompter: newPrompter(in, out),
		auth:     auth,
	}
}

// Run loops over the admin menu until Exit or end of input.
func (a *AdminApp) Run() error {
	for {
		fmt.Fprintln(a.out, "Admin Menu")
		fmt.Fprintln(a.out, "1. Activate User")
		fmt.Fprintln(a.out, "2. Deactivate User")
		fmt.Fprintln(a.out, "3. Print All Users")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.promptChoice("Enter your choice:", "1", "2", "3", "4")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			if err := a.toggleActivation(true); err != nil {
				return err
			}
		case "2":
			if err := a.toggleActivation(false); err != nil {
				return err
			}
		case "3":
			renderUsersTable(a.out, a.auth.ListUsers())
		case "4":
			return nil
		}
	}
}

func (a *AdminApp) toggleActivation(activate bool) error {
	verb := "activate"
	done := "activated"
	toggle := a.auth.ActivateUser
	if !activate {
		verb = "deactivate"
		done = "deactivated"
		toggle = a.auth.DeactivateUser
	}

	username, err := a.prompt(fmt.Sprintf("Enter the username to %s:", verb))
	if err != nil {
		return err
	}
	switch err := toggle(username); {
	case errors.Is(err, services.ErrUserNotFound):
		a.fail("User '%s' not found.", username)
	case err != nil:
		a.fail("%v", err)
	default:
		a.success("User '%s' has been %s successfully.", username, done)
	}
	return nil
}

// CreateAdmin writes the administrator credentials file. It refuses to
// overwrite an existing one.
func (a *AdminApp) CreateAdmin(path, username, password string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.New("system administrator already exists")
	}
	content := fmt.Sprintf("Username: %s\nPassword: %s\n", username, password)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write admin file: %w", err)
	}
	fmt.Fprintln(a.out, "System administrator created successfully.")
	return nil
}

// PurgeData deletes the data file after a confirmation prompt.
func (a *AdminApp) PurgeData(path string) error {
	confirmed, err := a.confirm("Are you sure you want to purge all saved data?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Operation canceled.")
		return nil
	}
	if err := storage.Purge(path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All saved data has been purged.")
	return nil
}
