package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/walletkeeper/internal/common"
	"github.com/avolkov/walletkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository builds a repository over db, which may be a *sql.DB
// or an open transaction.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, display_name, currency, locale, country,
	notifications_enabled, default_wallet_id, external_provider, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query :=
		`INSERT INTO users (email, password_hash, display_name, currency, locale, country, notifications_enabled, external_provider)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.DisplayName, user.Currency, user.Locale,
		user.Country, user.NotificationsEnabled, user.ExternalProvider).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) SetDefaultWallet(ctx context.Context, userID, walletID string) error {
	query := `UPDATE users SET default_wallet_id = $2, updated_at = now() WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, userID, walletID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*User, error) {
	user := &User{}
	var defaultWalletID sql.NullString

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.Currency, &user.Locale, &user.Country, &user.NotificationsEnabled,
		&defaultWalletID, &user.ExternalProvider, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	user.DefaultWalletID = defaultWalletID.String
	return user, nil
}
