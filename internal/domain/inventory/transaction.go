package inventory

import (
	"fmt"
	"time"

	"github.com/stocktrack/backend/internal/domain/shared"
)

// TransactionKind represents the kind of a stock transaction
type TransactionKind string

const (
	// TransactionKindStockIn adds the requested quantity to the item
	TransactionKindStockIn TransactionKind = "StockIn"
	// TransactionKindStockOut removes the requested quantity from the item
	TransactionKindStockOut TransactionKind = "StockOut"
	// TransactionKindAdjustment sets the item quantity to the requested value
	TransactionKindAdjustment TransactionKind = "Adjustment"
	// TransactionKindInitialStock records the starting quantity at item creation.
	// It is only applied internally; external callers cannot request it.
	TransactionKindInitialStock TransactionKind = "InitialStock"
)

// String returns the string representation
func (k TransactionKind) String() string {
	return string(k)
}

// IsValid checks whether the kind is one of the enumerated values
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionKindStockIn, TransactionKindStockOut,
		TransactionKindAdjustment, TransactionKindInitialStock:
		return true
	}
	return false
}

// ParseTransactionKind parses a kind from its string form. Unrecognized
// values fail with an invalid-input domain error rather than panicking.
func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(s)
	if !k.IsValid() {
		return "", shared.ErrInvalidInput.WithMessage(
			fmt.Sprintf("Invalid transaction type: %s", s))
	}
	return k, nil
}

// StockTransaction is an immutable record of one quantity change against
// an item. Transactions are append-only: they are never edited or removed
// individually, only cascade-deleted with the owning item. The pair
// (PreviousQuantity, NewQuantity) forms the audit trail; replaying an
// item's transactions oldest-first from 0 reproduces its current quantity.
type StockTransaction struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemID           int64           `gorm:"not null;index" json:"item_id"`
	Kind             TransactionKind `gorm:"type:varchar(20);not null;column:kind" json:"kind"`
	Quantity         int             `gorm:"not null" json:"quantity"`
	PreviousQuantity int             `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int             `gorm:"not null" json:"new_quantity"`
	Notes            string          `gorm:"type:text" json:"notes"`
	PerformedBy      string          `gorm:"type:varchar(200);not null" json:"performed_by"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
}

// TableName specifies the table name for StockTransaction
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// NewStockTransaction creates a transaction record for a completed quantity
// change. The caller supplies the before and after quantities observed
// while applying the change.
func NewStockTransaction(itemID int64, kind TransactionKind, quantity, previous, next int, notes, performedBy string) *StockTransaction {
	return &StockTransaction{
		ItemID:           itemID,
		Kind:             kind,
		Quantity:         quantity,
		PreviousQuantity: previous,
		NewQuantity:      next,
		Notes:            notes,
		PerformedBy:      performedBy,
		CreatedAt:        time.Now(),
	}
}
