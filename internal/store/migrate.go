package store

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jorgeutermoehl/agenda/internal/cryptox"
	"github.com/jorgeutermoehl/agenda/internal/models"
)

// Default credentials of the administrator account synthesized when a
// legacy single-user file is migrated. The operator is told to change them
// by the one-time migration notice.
const (
	AdminLogin    = "admin"
	AdminPassword = "admin"
	AdminName     = "Administrator"
)

// legacyContact is the pre-migration record shape: no owner, and an id that
// may be absent, a number, or an arbitrary string.
type legacyContact struct {
	ID    any    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// parseLegacyID extracts a usable positive integer from whatever the legacy
// file stored under "id".
func parseLegacyID(v any) (int, bool) {
	var id int
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		id = int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		id = parsed
	default:
		return 0, false
	}
	if id <= 0 {
		return 0, false
	}
	return id, true
}

// migrateLegacy converts the legacy bare list of contacts into the
// multi-user document: one synthesized administrator owns every record.
//
// ID reconciliation keeps original ids whenever they do not collide.
// An unusable or already-claimed id is replaced by the lowest unclaimed
// candidate, scanning upward past every claimed value, so the output ids
// are unique across the whole list. An empty legacy list yields the empty
// document with no synthesized user, and reports migrated=false.
func (s *Store) migrateLegacy(legacy []legacyContact) (*models.Document, bool) {
	doc := models.NewDocument()
	if len(legacy) == 0 {
		return doc, false
	}

	admin := models.User{
		ID:             1,
		Name:           AdminName,
		Login:          AdminLogin,
		PasswordDigest: cryptox.HashPassword(AdminPassword),
		CreatedAt:      nowFn().Format(time.RFC3339),
	}
	doc.Users = append(doc.Users, admin)

	claimed := make(map[int]bool, len(legacy))
	next := 1
	for _, lc := range legacy {
		id, ok := parseLegacyID(lc.ID)
		if !ok || claimed[id] {
			for claimed[next] {
				next++
			}
			id = next
			claimed[id] = true
			next++
		} else {
			claimed[id] = true
			if id >= next {
				next = id + 1
			}
		}
		doc.Contacts = append(doc.Contacts, models.Contact{
			ID:      id,
			OwnerID: admin.ID,
			Name:    lc.Name,
			Phone:   lc.Phone,
			Email:   lc.Email,
		})
	}

	s.Audit("Migrated legacy structure to the multi-user model")
	return doc, true
}
