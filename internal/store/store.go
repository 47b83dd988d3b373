// Package store owns the persisted JSON document: loading with corruption
// recovery, the one-time legacy migration, atomic whole-document saves, the
// timestamped backup writer, and the append-only audit log.
//
// All filesystem paths are resolved once in Open and held by the Store
// handle; no other package touches the data directory.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jorgeutermoehl/agenda/internal/filex"
	"github.com/jorgeutermoehl/agenda/internal/logging"
	"github.com/jorgeutermoehl/agenda/internal/models"
)

// nowFn is a test seam for the clock used in audit lines, backup names and
// migration timestamps.
var nowFn = time.Now

// LoadStatus enumerates the branch Load took, so recovery paths are
// observable without exercising real filesystem faults.
type LoadStatus int

const (
	// LoadOK means a well-formed document was read from disk.
	LoadOK LoadStatus = iota
	// LoadCreated means the data file was absent and a fresh empty document
	// was written in its place.
	LoadCreated
	// LoadRecovered means the file held malformed JSON; a backup was
	// attempted and an empty document was returned. Data on disk past this
	// point is only recoverable manually, from the backup.
	LoadRecovered
	// LoadMigrated means the file held the legacy bare-list shape and was
	// converted to the multi-user document, owned by a synthesized
	// administrator account.
	LoadMigrated
	// LoadDiscarded means the file parsed to something that is neither an
	// object nor a list; the value was discarded.
	LoadDiscarded
)

// LoadResult reports which branch Load took. BackupPath is set only for
// LoadRecovered, and only when the backup copy succeeded.
type LoadResult struct {
	Status     LoadStatus
	BackupPath string
}

// Store is the handle to the persisted document and its companion files.
type Store struct {
	dataDir   string
	dataPath  string
	auditPath string
	sessionID string
	logger    logging.Logger
}

// Open resolves the store paths under dataDir and assigns a session
// correlation id that tags every diagnostic line and the initialization
// audit entry. It does not touch the filesystem; files are created lazily
// by Load, Save and Audit.
func Open(dataDir, dataFile, auditFile string, logger logging.Logger) *Store {
	sid := uuid.NewString()
	return &Store{
		dataDir:   dataDir,
		dataPath:  filepath.Join(dataDir, dataFile),
		auditPath: filepath.Join(dataDir, auditFile),
		sessionID: sid,
		logger:    logger.With("session", sid),
	}
}

// DataPath returns the resolved path of the data file.
func (s *Store) DataPath() string { return s.dataPath }

// ensureFiles creates the data directory, an empty document if the data file
// is absent, and the audit file. Reports whether the data file had to be
// created.
func (s *Store) ensureFiles() (created bool, err error) {
	if err := filex.EnsureDir(s.dataDir); err != nil {
		return false, err
	}
	if _, err := os.Stat(s.dataPath); os.IsNotExist(err) {
		b, merr := json.MarshalIndent(models.NewDocument(), "", "  ")
		if merr != nil {
			return false, merr
		}
		if werr := os.WriteFile(s.dataPath, b, 0o660); werr != nil {
			return false, fmt.Errorf("create %s: %w", s.dataPath, werr)
		}
		created = true
	} else if err != nil {
		return false, err
	}
	if err := filex.EnsureFile(s.auditPath); err != nil {
		return false, err
	}
	return created, nil
}

// Load reads the persisted document, repairing what it can. Corruption and
// absence are recovered, never returned as errors; the returned document
// always has both collections present. Every call writes a "system
// initialized" audit entry, whatever branch was taken.
func (s *Store) Load() (*models.Document, LoadResult, error) {
	defer s.Audit(fmt.Sprintf("System initialized (session %s)", s.sessionID))

	created, err := s.ensureFiles()
	if err != nil {
		return nil, LoadResult{}, fmt.Errorf("prepare data files: %w", err)
	}
	if created {
		s.Audit("Data file was absent; created a new one")
		return models.NewDocument(), LoadResult{Status: LoadCreated}, nil
	}

	data, err := os.ReadFile(s.dataPath)
	if err != nil {
		return nil, LoadResult{}, fmt.Errorf("read %s: %w", s.dataPath, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		doc, res := s.recoverCorrupt(err)
		return doc, res, nil
	}

	switch raw.(type) {
	case []any:
		var legacy []legacyContact
		if err := json.Unmarshal(data, &legacy); err != nil {
			doc, res := s.recoverCorrupt(err)
			return doc, res, nil
		}
		doc, migrated := s.migrateLegacy(legacy)
		if !migrated {
			return doc, LoadResult{Status: LoadOK}, nil
		}
		return doc, LoadResult{Status: LoadMigrated}, nil

	case map[string]any:
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			d, res := s.recoverCorrupt(err)
			return d, res, nil
		}
		doc.Normalize()
		return &doc, LoadResult{Status: LoadOK}, nil

	default:
		// A bare string, number, bool or null is not a collection at all.
		s.Audit("Data file held a non-collection value; discarded")
		return models.NewDocument(), LoadResult{Status: LoadDiscarded}, nil
	}
}

// recoverCorrupt handles malformed content: best-effort backup, audit entry,
// fresh empty document. The backup path is empty when the copy failed.
func (s *Store) recoverCorrupt(cause error) (*models.Document, LoadResult) {
	backupPath, err := s.createBackup("corrupt")
	if err != nil {
		s.logger.Warn(context.Background(), "backup of corrupt data file failed",
			"path", s.dataPath, "error", err)
		backupPath = ""
	}
	s.Audit(fmt.Sprintf("Failed to load data (JSON): %v", cause))
	return models.NewDocument(), LoadResult{Status: LoadRecovered, BackupPath: backupPath}
}

// Save serializes the whole document and overwrites the data file in a
// single write. A write failure is the one persistence error that must reach
// the caller; reporting success on a failed save would misrepresent what is
// on disk.
func (s *Store) Save(doc *models.Document) error {
	if _, err := s.ensureFiles(); err != nil {
		s.Audit(fmt.Sprintf("Error saving data: %v", err))
		return fmt.Errorf("prepare data files: %w", err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.Audit(fmt.Sprintf("Error saving data: %v", err))
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.dataPath, b, 0o660); err != nil {
		s.Audit(fmt.Sprintf("Error saving data: %v", err))
		return fmt.Errorf("write %s: %w", s.dataPath, err)
	}
	s.Audit("Data saved")
	return nil
}
