package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avolkov/walletkeeper/internal/dbx"
	"github.com/avolkov/walletkeeper/internal/server/migrations"
	"github.com/avolkov/walletkeeper/internal/server/refreshtokens"
	"github.com/avolkov/walletkeeper/internal/server/users"
	"github.com/avolkov/walletkeeper/internal/server/wallets"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	wallets       wallets.Repository
	refreshTokens refreshtokens.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Wallets() wallets.Repository {
	return m.wallets
}

func (m *PostgresRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

// InTx runs fn with repositories bound to a single transaction, so account
// creation commits the user and their default wallet together.
func (m *PostgresRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, userRepo users.Repository, walletRepo wallets.Repository) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, users.NewPostgresRepository(tx), wallets.NewPostgresRepository(tx))
	})
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         users.NewPostgresRepository(db),
		wallets:       wallets.NewPostgresRepository(db),
		refreshTokens: refreshtokens.NewPostgresRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
