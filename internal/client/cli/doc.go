// Package cli provides the interactive WalletKeeper command-line client.
//
// It wires configuration, the local SQLite store, the gRPC auth client and
// the auth state manager into an interactive REPL. Typical flow: restore the
// local session if one exists, start a background connectivity watcher, and
// execute user commands.
//
// Key features:
//   - register / login / login via the external provider
//   - logout (local session cleared first, server revocation in background)
//   - whoami and session inspection
//   - connectivity probe against the server
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
