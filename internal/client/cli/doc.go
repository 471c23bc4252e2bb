// Package cli provides the interactive QuizBoard command-line client.
//
// It wires configuration, the local session store, the API services and an
// interactive REPL. The REPL plays the role of a browser: every command
// navigates to a route (home, my questions, register, login, edit user, edit
// question) or presses a button on the current view (search, add, answer,
// dismiss).
//
// Key features:
//   - Register / Login / Logout with a persisted bearer token
//   - Question lists with search, answer toggles and an add form
//   - Editing and deleting own questions and the own account
//   - Flash messages rendered as a coloured alert banner
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router and runREPL for details.
package cli
