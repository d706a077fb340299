package account

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const tableName = "accounts"

var ErrNotFound = errors.New("account not found")

var columns = []any{"id", "name", "type", "balance", "created_at", "updated_at"}

// Account represents an account record.
type Account struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Type      string          `db:"type"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name    string
	Type    string
	Balance decimal.Decimal
}

// AccountUpdate holds the columns to change. Omitted values are left as is.
type AccountUpdate struct {
	Name    omit.Val[string]
	Type    omit.Val[string]
	Balance omit.Val[decimal.Decimal]
}

// IsEmpty reports whether the update changes nothing.
func (u *AccountUpdate) IsEmpty() bool {
	return u.Name.IsUnset() && u.Type.IsUnset() && u.Balance.IsUnset()
}

// AccountFilter specifies filters for listing accounts. A zero Limit returns
// every account.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IReader is the read side of the accounts table.
//
//go:generate mockery --name IReader --inpackage --testonly=false --filename mock_IReader.go
type IReader interface {
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
}

// IWriter is used inside an operator transaction. Lookups lock the row.
//
//go:generate mockery --name IWriter --inpackage --testonly=false --filename mock_IWriter.go
type IWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByNameForUpdate(ctx context.Context, name string) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
