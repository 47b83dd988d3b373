// Package users implements the user directory: case-insensitive login
// lookup, signup, and credential verification over the in-memory document.
// Mutations are appended to the document; persisting is the caller's job.
package users

import (
	"strings"
	"time"

	"github.com/jorgeutermoehl/agenda/internal/common"
	"github.com/jorgeutermoehl/agenda/internal/cryptox"
	"github.com/jorgeutermoehl/agenda/internal/identity"
	"github.com/jorgeutermoehl/agenda/internal/models"
)

// nowFn is a test seam for the creation timestamp.
var nowFn = time.Now

// Directory is the user lookup/creation surface bound to a document.
type Directory struct {
	doc *models.Document
}

// NewDirectory binds a directory to the given document.
func NewDirectory(doc *models.Document) *Directory {
	return &Directory{doc: doc}
}

// FindByLogin returns the user whose login matches case-insensitively,
// or nil when there is none.
func (d *Directory) FindByLogin(login string) *models.User {
	login = strings.ToLower(login)
	for i := range d.doc.Users {
		if strings.ToLower(d.doc.Users[i].Login) == login {
			return &d.doc.Users[i]
		}
	}
	return nil
}

// Create appends a new user. Field shape (name, login pattern, password
// length) is the caller's responsibility; uniqueness of the login is not:
// it is re-checked here against the live document immediately before the
// append, so no duplicate can slip in between an earlier check and this
// call. Returns common.ErrLoginTaken on collision.
func (d *Directory) Create(name, login, password string) (*models.User, error) {
	if d.FindByLogin(login) != nil {
		return nil, common.ErrLoginTaken
	}

	ids := make([]int, len(d.doc.Users))
	for i, u := range d.doc.Users {
		ids[i] = u.ID
	}

	user := models.User{
		ID:             identity.NextID(ids),
		Name:           name,
		Login:          login,
		PasswordDigest: cryptox.HashPassword(password),
		CreatedAt:      nowFn().Format(time.RFC3339),
	}
	d.doc.Users = append(d.doc.Users, user)
	return &d.doc.Users[len(d.doc.Users)-1], nil
}

// Authenticate verifies a credential pair. The two failure modes are
// distinct sentinels so the caller can audit them differently, but both
// should read as "no user" to the operator.
func (d *Directory) Authenticate(login, password string) (*models.User, error) {
	user := d.FindByLogin(login)
	if user == nil {
		return nil, common.ErrUnknownLogin
	}
	if user.PasswordDigest != cryptox.HashPassword(password) {
		return nil, common.ErrWrongPassword
	}
	return user, nil
}
