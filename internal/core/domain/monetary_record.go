package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind distinguishes the two monetary collections.
type RecordKind string

const (
	RecordKindExpense RecordKind = "expense"
	RecordKindIncome  RecordKind = "income"
)

// MonetaryRecord is the common shape of an expense or income record: an
// amount denominated in a currency, owned by exactly one user. The invariant
// after any conversion is that Amount is expressed in Currency; the two must
// never disagree.
type MonetaryRecord struct {
	RecordID    string          `json:"recordID"`
	UserID      string          `json:"userID"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID"`
	Date        time.Time       `json:"date"`
	AuditFields
}

// Expense is a monetary record in the expenses collection.
type Expense struct {
	MonetaryRecord
}

// Income is a monetary record in the income collection.
type Income struct {
	MonetaryRecord
}
