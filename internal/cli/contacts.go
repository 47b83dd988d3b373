package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jorgeutermoehl/agenda/internal/common"
	"github.com/jorgeutermoehl/agenda/internal/models"
	"github.com/jorgeutermoehl/agenda/internal/repositories/contacts"
	"github.com/jorgeutermoehl/agenda/internal/validate"
)

// ContactPanel runs the per-user menu until logout.
func (a *App) ContactPanel(ctx context.Context) error {
	runContactMenu(ctx, a, a.reader, a.out)
	return nil
}

// AddContact collects validated fields, creates the contact for the
// current user, and persists immediately.
func (a *App) AddContact(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- New Contact ---")

	name, err := promptField(a.reader, "Name", a.out, validate.Name)
	if err != nil {
		return err
	}
	phone, err := promptField(a.reader, "Phone", a.out, validate.Phone)
	if err != nil {
		return err
	}
	email, err := promptField(a.reader, "E-mail", a.out, validate.Email)
	if err != nil {
		return err
	}

	c := a.contacts.Create(a.current.ID, contacts.Fields{Name: name, Phone: phone, Email: email})
	if err := a.store.Save(a.doc); err != nil {
		fmt.Fprintf(a.out, "Could not save data: %v\n", err)
		return err
	}
	a.store.Audit(fmt.Sprintf("Contact created by %s: %s", a.current.Login, c.Name))
	fmt.Fprintln(a.out, "Contact registered successfully!")
	return nil
}

// ListContacts prints the current user's contacts in document order.
func (a *App) ListContacts(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Contact List ---")

	list := a.contacts.ListForOwner(a.current.ID)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No contacts registered for this user.")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(a.out, "ID: %d | Name: %s | Phone: %s | E-mail: %s\n", c.ID, c.Name, c.Phone, c.Email)
	}
	fmt.Fprintf(a.out, "\nTotal contacts: %d\n", len(list))
	a.store.Audit(fmt.Sprintf("Listed contacts (%s)", a.current.Login))
	return nil
}

// askContact prompts for an id and resolves it within the current user's
// contacts. A non-numeric id or an id owned by someone else is reported as
// not found, never as an error.
func (a *App) askContact(prompt string) (*models.Contact, error) {
	idText, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	id, convErr := strconv.Atoi(idText)
	if convErr != nil {
		fmt.Fprintln(a.out, "Contact not found.")
		return nil, nil
	}
	c := a.contacts.FindByID(a.current.ID, id)
	if c == nil {
		fmt.Fprintln(a.out, "Contact not found.")
	}
	return c, nil
}

// EditContact replaces a contact's fields in place; pressing Enter on a
// field keeps its current value.
func (a *App) EditContact(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Edit Contact ---")

	if len(a.contacts.ListForOwner(a.current.ID)) == 0 {
		fmt.Fprintln(a.out, "No contacts to edit.")
		return nil
	}

	c, err := a.askContact("Inform the ID of the contact to edit")
	if err != nil || c == nil {
		return err
	}
	fmt.Fprintf(a.out, "Editing contact: %s\n", c.Name)

	name, err := promptOptional(a.reader, fmt.Sprintf("New name [%s]", c.Name), a.out, validate.Name)
	if err != nil {
		return err
	}
	phone, err := promptOptional(a.reader, fmt.Sprintf("New phone [%s]", c.Phone), a.out, validate.Phone)
	if err != nil {
		return err
	}
	email, err := promptOptional(a.reader, fmt.Sprintf("New e-mail [%s]", c.Email), a.out, validate.Email)
	if err != nil {
		return err
	}

	a.contacts.Update(c, contacts.Fields{Name: name, Phone: phone, Email: email})
	if err := a.store.Save(a.doc); err != nil {
		fmt.Fprintf(a.out, "Could not save data: %v\n", err)
		return err
	}
	a.store.Audit(fmt.Sprintf("Edited contact ID %d - %s", c.ID, a.current.Login))
	fmt.Fprintln(a.out, "Contact updated successfully!")
	return nil
}

// DeleteContact removes a contact after a y/N confirmation.
func (a *App) DeleteContact(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Delete Contact ---")

	if len(a.contacts.ListForOwner(a.current.ID)) == 0 {
		fmt.Fprintln(a.out, "No contacts to delete.")
		return nil
	}

	c, err := a.askContact("Inform the ID of the contact to delete")
	if err != nil || c == nil {
		return err
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Confirm deletion of %q? (y/N)", c.Name), a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	id := c.ID
	if derr := a.contacts.Delete(a.current.ID, id); derr != nil {
		if errors.Is(derr, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Contact not found.")
			return nil
		}
		return derr
	}
	if err := a.store.Save(a.doc); err != nil {
		fmt.Fprintf(a.out, "Could not save data: %v\n", err)
		return err
	}
	a.store.Audit(fmt.Sprintf("Deleted contact ID %d - %s", id, a.current.Login))
	fmt.Fprintln(a.out, "Contact deleted successfully!")
	return nil
}
