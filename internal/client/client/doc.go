// Package client contains client-side building blocks for WalletKeeper.
//
// # Overview
//
// The package provides:
//  1. A concrete gRPC auth provider (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, maps gRPC status codes to sentinel errors,
//     and bridges the server-side auth-state stream into a callback
//     subscription.
//  2. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Remote failures are translated at this boundary into the closed sentinel
// set from internal/common (ErrEmailInUse, ErrWeakPassword, ErrInvalidEmail,
// ErrorUnauthorized, ErrorNotFound) plus ErrUnavailable. Provider-specific
// codes never leak past this package; callers match with errors.Is.
//
// # Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
