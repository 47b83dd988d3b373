package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jorgeutermoehl/agenda/internal/common"
	"github.com/jorgeutermoehl/agenda/internal/validate"
)

// Login prompts for credentials and tries to authenticate. Both failure
// modes read as "no user" to the operator but get distinguishable audit
// entries. Failures are expected outcomes: the menu simply comes back.
func (a *App) Login(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Login ---")

	login, err := GetSimpleText(a.reader, "Login", a.out)
	if err != nil {
		return err
	}
	if login == "" {
		fmt.Fprintln(a.out, "Inform the login.")
		return nil
	}

	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Authenticate(login, password)
	switch {
	case errors.Is(err, common.ErrUnknownLogin):
		fmt.Fprintln(a.out, "User not found.")
		a.store.Audit("Invalid login attempt: " + login)
		return nil
	case errors.Is(err, common.ErrWrongPassword):
		fmt.Fprintln(a.out, "Wrong password.")
		a.store.Audit("Wrong password for user: " + login)
		return nil
	case err != nil:
		return err
	}

	a.current = user
	fmt.Fprintf(a.out, "Welcome, %s\n", user.Name)
	a.store.Audit("Login by: " + user.Login)
	return nil
}

// Logout drops the in-memory session. Nothing is persisted here; every
// mutation was already saved when it happened.
func (a *App) Logout(ctx context.Context) error {
	a.current = nil
	return nil
}

// Signup collects and validates the new account's fields, re-prompting on
// rejection, then creates the user and persists immediately.
func (a *App) Signup(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- User Signup ---")

	name, err := promptField(a.reader, "Full name", a.out, validate.Name)
	if err != nil {
		return err
	}

	var login string
	for {
		login, err = GetSimpleText(a.reader, "Desired login", a.out)
		if err != nil {
			return err
		}
		if verr := validate.Login(login); verr != nil {
			fmt.Fprintln(a.out, verr)
			continue
		}
		if a.users.FindByLogin(login) != nil {
			fmt.Fprintln(a.out, "Login unavailable. Try another.")
			continue
		}
		break
	}

	var password string
	for {
		password, err = GetPassword(a.reader, "Password", a.out)
		if err != nil {
			return err
		}
		if verr := validate.Password(password); verr != nil {
			fmt.Fprintln(a.out, verr)
			continue
		}
		confirm, cerr := GetPassword(a.reader, "Confirm the password", a.out)
		if cerr != nil {
			return cerr
		}
		if password != confirm {
			fmt.Fprintln(a.out, "Passwords do not match.")
			continue
		}
		break
	}

	user, err := a.users.Create(name, login, password)
	if err != nil {
		// The uniqueness re-check inside Create rejected the login.
		fmt.Fprintln(a.out, "Login unavailable. Try another.")
		return err
	}

	if err := a.store.Save(a.doc); err != nil {
		fmt.Fprintf(a.out, "Could not save data: %v\n", err)
		return err
	}
	a.store.Audit("User signup: " + user.Login)
	fmt.Fprintln(a.out, "User registered successfully!")
	return nil
}
