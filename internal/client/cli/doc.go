// Package cli provides the interactive MedFinder command-line client.
//
// It wires configuration, local storage, the backend client, the session
// manager and the route guard, then serves an interactive REPL. Every
// screen is a location: a command navigates to it first and the guard may
// send the user to the login screen (protected screens) or home (login and
// registration while logged in) instead.
//
// Key features:
//   - Login / Register / Logout, password reset
//   - Drug and pharmacy search with paging ("more")
//   - Nearby pharmacies around the configured position
//   - Availability reports: submit (administrators), list own, edit,
//     delete, confirm, dispute
//   - French and English interface
//
// The REPL is started via App.Run(ctx), which restores the saved session
// and blocks until the user exits. See App and runREPL for details.
package cli
