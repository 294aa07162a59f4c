package wallets

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        string
	UserID    string
	Name      string
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
}
