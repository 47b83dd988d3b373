// Package cli provides the interactive agenda client.
//
// It wires configuration, the JSON-backed store, and the user/contact
// repositories behind two numbered text menus: an access-control menu
// (login, signup, exit) and, once authenticated, a contact panel (add,
// list, edit, delete, log out).
//
// The menus are driven through small command interfaces so tests can run
// them against fakes, and all interactive input goes through helpers with
// swappable seams for the terminal password read.
//
// The loop is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled.
package cli
