// Package ledger holds the running entry list for a session. It is the only
// writer: id assignment and timestamping happen here, so the report engine
// and the spreadsheet adapters stay free of ambient state.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/financify-dev/financify/internal/model"
)

// ErrNoValidRows is returned when an import produced zero usable candidates.
// No partial import is ever applied on this path.
var ErrNoValidRows = errors.New("no valid rows to import")

// Store persists the full entry list under a single slot.
type Store interface {
	Load() (entries []model.Entry, found bool, err error)
	Save(entries []model.Entry) error
}

// Ledger owns the entry list. Single logical writer, no locking: the
// interactive session serializes all mutations.
type Ledger struct {
	store   Store
	clock   func() time.Time
	entries []model.Entry
}

// New creates a Ledger over a store. A nil clock defaults to time.Now.
func New(store Store, clock func() time.Time) *Ledger {
	if clock == nil {
		clock = time.Now
	}
	return &Ledger{store: store, clock: clock}
}

// Load pulls the persisted entry list. A never-written store is seeded with
// the demonstration dataset and persisted immediately.
func (l *Ledger) Load() error {
	entries, found, err := l.store.Load()
	if err != nil {
		return err
	}
	if !found {
		entries = SampleEntries(l.clock())
		if err := l.store.Save(entries); err != nil {
			return fmt.Errorf("seeding entries: %w", err)
		}
	}
	l.entries = entries
	return nil
}

// All returns a copy of the entry list.
func (l *Ledger) All() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// NextID continues the sequence from the current maximum id.
func (l *Ledger) NextID() int {
	maxID := 0
	for _, e := range l.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// AddParams holds the user-supplied fields of a new entry.
type AddParams struct {
	Date        string
	AccountID   string
	Direction   model.Direction
	Amount      int64
	Description string
}

// Add validates params, assigns id and timestamp, appends, and persists.
// The account id is deliberately not checked against the catalog: an unknown
// id never contributes to balances and displays under the unknown sentinel.
func (l *Ledger) Add(p AddParams) (model.Entry, error) {
	if _, err := time.Parse(model.DateFormat, p.Date); err != nil {
		return model.Entry{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", p.Date)
	}
	if p.AccountID == "" {
		return model.Entry{}, errors.New("account id is required")
	}
	if !p.Direction.Valid() {
		return model.Entry{}, fmt.Errorf("direction must be debit or credit, got %q", p.Direction)
	}
	if p.Amount <= 0 {
		return model.Entry{}, errors.New("amount must be positive")
	}
	if p.Description == "" {
		return model.Entry{}, errors.New("description is required")
	}

	entry := model.Entry{
		ID:          l.NextID(),
		Date:        p.Date,
		AccountID:   p.AccountID,
		Direction:   p.Direction,
		Amount:      p.Amount,
		Description: p.Description,
		RecordedAt:  l.clock(),
	}

	next := append(l.All(), entry)
	if err := l.store.Save(next); err != nil {
		return model.Entry{}, fmt.Errorf("saving entries: %w", err)
	}
	l.entries = next
	return entry, nil
}

// Append accepts import candidates: sequential ids continuing from the
// current maximum, one insertion timestamp for the batch. An empty candidate
// list fails with ErrNoValidRows. The in-memory list is only swapped after a
// successful save, so a failed import never leaves a partial merge.
func (l *Ledger) Append(candidates []model.EntryCandidate) ([]model.Entry, error) {
	if len(candidates) == 0 {
		return nil, ErrNoValidRows
	}

	nextID := l.NextID()
	now := l.clock()

	added := make([]model.Entry, len(candidates))
	for i, c := range candidates {
		added[i] = model.Entry{
			ID:          nextID + i,
			Date:        c.Date,
			AccountID:   c.AccountID,
			Direction:   c.Direction,
			Amount:      c.Amount,
			Description: c.Description,
			RecordedAt:  now,
		}
	}

	next := append(l.All(), added...)
	if err := l.store.Save(next); err != nil {
		return nil, fmt.Errorf("saving entries: %w", err)
	}
	l.entries = next
	return added, nil
}
