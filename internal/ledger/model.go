package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known variants.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Currency is the tag attached to an amount. Amounts are never converted.
type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyUSD Currency = "USD"
)

func (c Currency) Valid() bool {
	return c == CurrencyIDR || c == CurrencyUSD
}

// Transaction is a single dated money movement owned by one user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	Currency    Currency
	// SavingsGoalID optionally pins the transaction to one goal instead of
	// matching goals by description.
	SavingsGoalID uuid.NullUUID
	CreatedAt     time.Time
}

// Signed returns the amount with income positive and expense negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BudgetCategory is a named spending bucket with a monthly ceiling.
type BudgetCategory struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Budget    decimal.Decimal
	Color     string
	CreatedAt time.Time
}

// SavingsGoal is a named target amount whose progress follows matched transactions.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Progress returns round(current/target*100) and the same value clamped to 100.
func (g SavingsGoal) Progress() (percentage int64, display int64) {
	if !g.TargetAmount.IsPositive() {
		return 0, 0
	}
	percentage = g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Round(0).IntPart()
	display = percentage
	if display > 100 {
		display = 100
	}
	return percentage, display
}

// Role is advisory only; nothing enforces it.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
	RoleViewer Role = "Viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Status is advisory only and is not kept live.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

func (s Status) Valid() bool {
	return s == StatusOnline || s == StatusOffline
}

// Profile is a household member. OwnerID is the account that manages the
// profile; the account holder's own profile has OwnerID == ID.
type Profile struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Role      Role
	Status    Status
	AvatarURL string
}

// IsAccountHolder reports whether the profile belongs to the signed-in account itself.
func (p Profile) IsAccountHolder() bool {
	return p.ID == p.OwnerID
}

var hundred = decimal.NewFromInt(100)
