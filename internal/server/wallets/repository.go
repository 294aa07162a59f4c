package wallets

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, wallet *Wallet) (*Wallet, error)
	GetByUser(ctx context.Context, userID string) ([]*Wallet, error)
	GetByID(ctx context.Context, id string) (*Wallet, error)
}
