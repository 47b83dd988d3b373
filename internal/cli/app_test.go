package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorgeutermoehl/agenda/internal/config"
	"github.com/jorgeutermoehl/agenda/internal/logging"
	"github.com/jorgeutermoehl/agenda/internal/models"
	"github.com/jorgeutermoehl/agenda/internal/store"
)

// script joins menu inputs into the byte stream a session would type.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func newTestApp(t *testing.T, dataDir, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil, nil) // passwords fall back to plain line reads

	cfg := &config.Config{DataDir: dataDir, DataFile: "contacts.json", AuditFile: "log.txt"}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	app := &App{
		config: cfg,
		store:  store.Open(cfg.DataDir, cfg.DataFile, cfg.AuditFile, logger),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
		logger: logger,
	}
	return app, out
}

func readDocument(t *testing.T, dataDir string) models.Document {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dataDir, "contacts.json"))
	require.NoError(t, err)
	var doc models.Document
	require.NoError(t, json.Unmarshal(b, &doc))
	return doc
}

func readAuditLog(t *testing.T, dataDir string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dataDir, "log.txt"))
	require.NoError(t, err)
	return string(b)
}

func TestRun_SignupLoginAndAddContact(t *testing.T) {
	dir := t.TempDir()
	app, out := newTestApp(t, dir, script(
		"2", "Ana Lima", "ana", "s3cret", "s3cret",
		"1", "ana", "s3cret",
		"1", "Carlos Silva", "11988887777", "carlos@example.com",
		"2",
		"5",
		"3",
	))

	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, "User registered successfully!")
	require.Contains(t, text, "Welcome, Ana Lima")
	require.Contains(t, text, "Contact registered successfully!")
	require.Contains(t, text, "ID: 1 | Name: Carlos Silva | Phone: 11988887777 | E-mail: carlos@example.com")
	require.Contains(t, text, "Total contacts: 1")

	doc := readDocument(t, dir)
	require.Len(t, doc.Users, 1)
	require.Equal(t, "ana", doc.Users[0].Login)
	require.NotContains(t, doc.Users[0].PasswordDigest, "s3cret")
	require.Len(t, doc.Contacts, 1)
	require.Equal(t, doc.Users[0].ID, doc.Contacts[0].OwnerID)

	audit := readAuditLog(t, dir)
	require.Contains(t, audit, "User signup: ana")
	require.Contains(t, audit, "Login by: ana")
	require.Contains(t, audit, "Contact created by ana: Carlos Silva")
	require.Contains(t, audit, "Listed contacts (ana)")
}

func TestRun_AuthFailuresAreDistinguishedInAudit(t *testing.T) {
	dir := t.TempDir()

	seed, _ := newTestApp(t, dir, script("2", "Ana Lima", "ana", "s3cret", "s3cret", "3"))
	require.NoError(t, seed.Run(context.Background()))

	app, out := newTestApp(t, dir, script(
		"1", "ana", "wrong",
		"1", "nobody", "s3cret",
		"3",
	))
	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, "Wrong password.")
	require.Contains(t, text, "User not found.")

	audit := readAuditLog(t, dir)
	require.Contains(t, audit, "Wrong password for user: ana")
	require.Contains(t, audit, "Invalid login attempt: nobody")
}

func TestRun_EditWithBlankInputsKeepsEveryField(t *testing.T) {
	dir := t.TempDir()

	seed, _ := newTestApp(t, dir, script(
		"2", "Ana Lima", "ana", "s3cret", "s3cret",
		"1", "ana", "s3cret",
		"1", "Carlos Silva", "11988887777", "carlos@example.com",
		"5", "3",
	))
	require.NoError(t, seed.Run(context.Background()))
	before := readDocument(t, dir)

	app, out := newTestApp(t, dir, script(
		"1", "ana", "s3cret",
		"3", "1", "", "", "",
		"5", "3",
	))
	require.NoError(t, app.Run(context.Background()))

	require.Contains(t, out.String(), "Contact updated successfully!")
	after := readDocument(t, dir)
	require.Equal(t, before.Contacts, after.Contacts)
}

func TestRun_DeleteRemovesOneAndSecondDeleteIsNotFound(t *testing.T) {
	dir := t.TempDir()

	seed, _ := newTestApp(t, dir, script(
		"2", "Ana Lima", "ana", "s3cret", "s3cret",
		"1", "ana", "s3cret",
		"1", "Carlos Silva", "11988887777", "carlos@example.com",
		"1", "Beatriz Souza", "11977776666", "bia@example.com",
		"5", "3",
	))
	require.NoError(t, seed.Run(context.Background()))

	app, out := newTestApp(t, dir, script(
		"1", "ana", "s3cret",
		"4", "1", "y",
		"4", "1",
		"5", "3",
	))
	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, "Contact deleted successfully!")
	require.Contains(t, text, "Contact not found.")

	doc := readDocument(t, dir)
	require.Len(t, doc.Contacts, 1)
	require.Equal(t, 2, doc.Contacts[0].ID)

	require.Contains(t, readAuditLog(t, dir), "Deleted contact ID 1 - ana")
}

func TestRun_DeleteCancelledKeepsContact(t *testing.T) {
	dir := t.TempDir()

	seed, _ := newTestApp(t, dir, script(
		"2", "Ana Lima", "ana", "s3cret", "s3cret",
		"1", "ana", "s3cret",
		"1", "Carlos Silva", "11988887777", "carlos@example.com",
		"5", "3",
	))
	require.NoError(t, seed.Run(context.Background()))

	app, out := newTestApp(t, dir, script(
		"1", "ana", "s3cret",
		"4", "1", "n",
		"5", "3",
	))
	require.NoError(t, app.Run(context.Background()))

	require.Contains(t, out.String(), "Deletion cancelled.")
	require.Len(t, readDocument(t, dir).Contacts, 1)
}

func TestRun_MigrationNoticeAndAdminAccess(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(dir, 0o770))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.json"),
		[]byte(`[{"id": 1, "name": "Velho Contato", "phone": "32221111", "email": "velho@example.com"}]`), 0o660))

	app, out := newTestApp(t, dir, script(
		"1", "admin", "admin",
		"2",
		"5", "3",
	))
	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, `Structure migrated. Use login "admin" and password "admin"`)
	require.Contains(t, text, "Welcome, Administrator")
	require.Contains(t, text, "ID: 1 | Name: Velho Contato")
}

func TestRun_CorruptFileWarningNamesBackup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.json"), []byte(`{"users": [`), 0o660))

	app, out := newTestApp(t, dir, script("3"))
	require.NoError(t, app.Run(context.Background()))

	require.Contains(t, out.String(), "Contacts file was corrupt. Backup created at")
	baks, err := filepath.Glob(filepath.Join(dir, "*.bak"))
	require.NoError(t, err)
	require.Len(t, baks, 1)
}

func TestRun_SignupRejectsDuplicateLoginWithoutMutation(t *testing.T) {
	dir := t.TempDir()

	seed, _ := newTestApp(t, dir, script("2", "Ana Lima", "ana", "s3cret", "s3cret", "3"))
	require.NoError(t, seed.Run(context.Background()))

	app, out := newTestApp(t, dir, script(
		"2", "Outra Ana", "ANA", "other-login", "s3cret", "s3cret",
		"3",
	))
	require.NoError(t, app.Run(context.Background()))

	require.Contains(t, out.String(), "Login unavailable. Try another.")
	doc := readDocument(t, dir)
	require.Len(t, doc.Users, 2, "the retried login succeeds")
	require.Equal(t, "other-login", doc.Users[1].Login)
}
