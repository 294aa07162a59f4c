package wallets

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

func (r *PostgresRepository) Create(ctx context.Context, wallet *Wallet) (*Wallet, error) {
	query :=
		`INSERT INTO wallets (user_id, name, currency, balance)
         VALUES ($1, $2, $3, $4)
         RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		wallet.UserID, wallet.Name, wallet.Currency, wallet.Balance).Scan(&wallet.ID, &wallet.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return wallet, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) ([]*Wallet, error) {
	query :=
		`SELECT id, user_id, name, currency, balance, created_at FROM wallets
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []*Wallet
	for rows.Next() {
		w := &Wallet{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Currency, &w.Balance, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning wallet row: %v", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Wallet, error) {
	query :=
		`SELECT id, user_id, name, currency, balance, created_at FROM wallets
		 WHERE id = $1
		 `

	w := &Wallet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.UserID, &w.Name, &w.Currency, &w.Balance, &w.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return w, nil
}
