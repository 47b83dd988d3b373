package store

import (
	"context"
	"fmt"
	"os"

	"github.com/jorgeutermoehl/agenda/internal/filex"
)

// auditTimeLayout is the fixed timestamp prefix of audit lines.
const auditTimeLayout = "02/01/2006 15:04:05"

// Audit appends a timestamped free-text action to the audit file. The audit
// trail is a side channel: every failure here is swallowed after a
// diagnostic warning, so it can never block a primary operation.
func (s *Store) Audit(action string) {
	if err := filex.EnsureDir(s.dataDir); err != nil {
		s.logger.Warn(context.Background(), "audit log unavailable", "error", err)
		return
	}
	f, err := os.OpenFile(s.auditPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		s.logger.Warn(context.Background(), "audit log unavailable", "path", s.auditPath, "error", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s\n", nowFn().Format(auditTimeLayout), action)
	if _, err := f.WriteString(line); err != nil {
		s.logger.Warn(context.Background(), "audit write failed", "path", s.auditPath, "error", err)
	}
}
