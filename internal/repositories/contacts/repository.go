// Package contacts implements owner-scoped CRUD over the contacts held by
// the in-memory document. Contact ids are unique per owner, not globally;
// global uniqueness only exists on freshly migrated legacy data. Persisting
// after a mutation is the caller's job.
package contacts

import (
	"github.com/jorgeutermoehl/agenda/internal/common"
	"github.com/jorgeutermoehl/agenda/internal/identity"
	"github.com/jorgeutermoehl/agenda/internal/models"
)

// Fields carries replacement values for Create and Update. On Update an
// empty field keeps the contact's current value, which implements the
// "press Enter to keep" editing flow.
type Fields struct {
	Name  string
	Phone string
	Email string
}

// Repository is the contact CRUD surface bound to a document.
type Repository struct {
	doc *models.Document
}

// NewRepository binds a repository to the given document.
func NewRepository(doc *models.Document) *Repository {
	return &Repository{doc: doc}
}

// ListForOwner returns the contacts owned by ownerID in document order.
func (r *Repository) ListForOwner(ownerID int) []models.Contact {
	out := []models.Contact{}
	for _, c := range r.doc.Contacts {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out
}

// FindByID returns the contact with the given id owned by ownerID, or nil.
// A contact with a matching id but a different owner is "not found", never
// an error.
func (r *Repository) FindByID(ownerID, id int) *models.Contact {
	for i := range r.doc.Contacts {
		if r.doc.Contacts[i].ID == id && r.doc.Contacts[i].OwnerID == ownerID {
			return &r.doc.Contacts[i]
		}
	}
	return nil
}

// Create appends a new contact for ownerID. The id is allocated over the
// owner's contacts only, so each owner's directory grows independently.
func (r *Repository) Create(ownerID int, f Fields) *models.Contact {
	var ids []int
	for _, c := range r.doc.Contacts {
		if c.OwnerID == ownerID {
			ids = append(ids, c.ID)
		}
	}

	contact := models.Contact{
		ID:      identity.NextID(ids),
		OwnerID: ownerID,
		Name:    f.Name,
		Phone:   f.Phone,
		Email:   f.Email,
	}
	r.doc.Contacts = append(r.doc.Contacts, contact)
	return &r.doc.Contacts[len(r.doc.Contacts)-1]
}

// Update replaces the contact's fields in place. Empty fields keep their
// current value.
func (r *Repository) Update(c *models.Contact, f Fields) {
	if f.Name != "" {
		c.Name = f.Name
	}
	if f.Phone != "" {
		c.Phone = f.Phone
	}
	if f.Email != "" {
		c.Email = f.Email
	}
}

// Delete removes the single contact matching both id and owner. Returns
// common.ErrNotFound when no such contact exists; deleting twice reports
// not found the second time.
func (r *Repository) Delete(ownerID, id int) error {
	for i := range r.doc.Contacts {
		if r.doc.Contacts[i].ID == id && r.doc.Contacts[i].OwnerID == ownerID {
			r.doc.Contacts = append(r.doc.Contacts[:i], r.doc.Contacts[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}
