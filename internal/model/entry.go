package model

import "time"

// Direction is the side of an account an amount is posted to.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Debit || d == Credit
}

// DateFormat is the calendar date layout used by Entry.Date.
const DateFormat = "2006-01-02"

// Entry is a single dated posting of an amount to one account.
// Entries never mutate after creation; the entry list only grows.
type Entry struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	AccountID   string    `json:"accountId"`
	Direction   Direction `json:"direction"`
	Amount      int64     `json:"amount"` // minor currency units, never negative
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recordedAt"` // provenance only, never used in balance math
}

// EntryCandidate is an Entry before the ledger assigns ID and RecordedAt.
type EntryCandidate struct {
	Date        string
	AccountID   string
	Direction   Direction
	Amount      int64
	Description string
}
