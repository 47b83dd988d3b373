package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// accessExec defines the minimal command surface the access-control menu
// needs. The real App type satisfies it; tests can provide a stub.
type accessExec interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ContactPanel(ctx context.Context) error
}

// panelExec defines the command surface of the contact panel.
type panelExec interface {
	userLabel() string
	AddContact(ctx context.Context) error
	ListContacts(ctx context.Context) error
	EditContact(ctx context.Context) error
	DeleteContact(ctx context.Context) error
	Logout(ctx context.Context) error
}

func menuHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 40))
}

// runAccessMenu drives the outer menu: log in, sign up, or leave. A
// successful login drops straight into the contact panel and comes back
// here when the user logs out.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the operator. The loop ends on read error (EOF),
// context cancellation, or the exit option.
func runAccessMenu(ctx context.Context, a accessExec, in *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		menuHeader(w, "Access Control")
		fmt.Fprintln(w, "1) Log in")
		fmt.Fprintln(w, "2) Sign up")
		fmt.Fprintln(w, "3) Exit")

		choice, err := GetSimpleText(in, "Choose an option (1-3)", w)
		if err != nil {
			return
		}
		switch choice {
		case "1":
			_ = a.Login(ctx)
			if a.isLoggedIn() {
				_ = a.ContactPanel(ctx)
			}
		case "2":
			_ = a.Signup(ctx)
		case "3":
			fmt.Fprintln(w, "Leaving. Thanks for using the agenda!")
			return
		default:
			fmt.Fprintln(w, "Invalid option. Enter a number from 1 to 3.")
		}
	}
}

// runContactMenu drives the per-user contact panel until logout.
func runContactMenu(ctx context.Context, a panelExec, in *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		menuHeader(w, "Contact Agenda - User: "+a.userLabel())
		fmt.Fprintln(w, "1) Add contact")
		fmt.Fprintln(w, "2) List contacts")
		fmt.Fprintln(w, "3) Edit contact")
		fmt.Fprintln(w, "4) Delete contact")
		fmt.Fprintln(w, "5) Log out")

		choice, err := GetSimpleText(in, "Choose an option (1-5)", w)
		if err != nil {
			return
		}
		switch choice {
		case "1":
			_ = a.AddContact(ctx)
		case "2":
			_ = a.ListContacts(ctx)
		case "3":
			_ = a.EditContact(ctx)
		case "4":
			_ = a.DeleteContact(ctx)
		case "5":
			_ = a.Logout(ctx)
			fmt.Fprintln(w, "Leaving current account.")
			return
		default:
			fmt.Fprintln(w, "Invalid option. Enter a number from 1 to 5.")
		}
	}
}
