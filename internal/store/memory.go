package store

import "github.com/financify-dev/financify/internal/model"

// Memory is an in-process store for tests and ephemeral sessions.
type Memory struct {
	entries []model.Entry
	written bool

	// FailSave, when set, makes Save return the error without storing.
	FailSave error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored entry list.
func (s *Memory) Load() ([]model.Entry, bool, error) {
	if !s.written {
		return nil, false, nil
	}
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out, true, nil
}

// Save replaces the stored entry list.
func (s *Memory) Save(entries []model.Entry) error {
	if s.FailSave != nil {
		return s.FailSave
	}
	s.entries = make([]model.Entry, len(entries))
	copy(s.entries, entries)
	s.written = true
	return nil
}
