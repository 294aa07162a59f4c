package db

import (
	"context"
	"database/sql"

	"github.com/avolkov/walletkeeper/internal/server/refreshtokens"
	"github.com/avolkov/walletkeeper/internal/server/users"
	"github.com/avolkov/walletkeeper/internal/server/wallets"
)

// RepositoryManager bundles the server repositories behind one handle and
// doubles as the transaction runner for operations spanning several of them.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Wallets() wallets.Repository
	RefreshTokens() refreshtokens.Repository
	users.TxRunner
}
