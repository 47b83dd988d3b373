package store

import (
	"fmt"
	"path/filepath"

	"github.com/jorgeutermoehl/agenda/internal/filex"
)

// createBackup copies the data file to a timestamped sibling named
// <original-name>.<reason>.<YYYYMMDDHHMMSS>.bak and returns the backup path.
// Callers treat failures as non-fatal.
func (s *Store) createBackup(reason string) (string, error) {
	name := fmt.Sprintf("%s.%s.%s.bak",
		filepath.Base(s.dataPath), reason, nowFn().Format("20060102150405"))
	dst := filepath.Join(s.dataDir, name)
	if err := filex.Copy(s.dataPath, dst); err != nil {
		return "", err
	}
	return dst, nil
}
