// Package models defines the persisted document shape: the root Document and
// the User and Contact records it owns.
package models

// User is an account able to own contacts. Users are created at signup or
// synthesized by the legacy migration; they are never mutated afterwards and
// never deleted.
type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Login          string `json:"login"`
	PasswordDigest string `json:"password_digest"`
	CreatedAt      string `json:"created_at"`
}

// Contact is a directory entry owned by a single user. OwnerID is a lookup
// reference to User.ID, not a lifetime dependency.
type Contact struct {
	ID      int    `json:"id"`
	OwnerID int    `json:"owner_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Document is the single root object persisted to disk. Both slices are
// always non-nil on a loaded document so the persisted form always carries
// both keys.
type Document struct {
	Users    []User    `json:"users"`
	Contacts []Contact `json:"contacts"`
}

// NewDocument returns an empty document with both collections present.
func NewDocument() *Document {
	return &Document{Users: []User{}, Contacts: []Contact{}}
}

// Normalize replaces nil collections with empty ones. Called after decoding
// so a document missing either key still round-trips with both.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Contacts == nil {
		d.Contacts = []Contact{}
	}
}
