package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceType names the kind of domain object that produced a journal entry.
type ReferenceType string

const (
	RefInvoice ReferenceType = "invoice"
	RefPayment ReferenceType = "payment"
	RefExpense ReferenceType = "expense"
	RefManual  ReferenceType = "manual"
)

// JournalEntry represents a single economic event. It is immutable after
// creation except for compensating deletion (e.g. expense rejection).
type JournalEntry struct {
	EntryID       string        `json:"entryID"`
	BusinessID    string        `json:"businessID"`
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	ReferenceType ReferenceType `json:"referenceType"`
	ReferenceID   string        `json:"referenceID"` // advisory link, not a foreign key
	CreatedAt     time.Time     `json:"createdAt"`
}

// JournalLine is one debit-or-credit movement against a single account.
// Lines are owned by their entry and cascade-deleted with it.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
