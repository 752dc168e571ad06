package commands

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/financify-dev/financify/internal/accounts"
	"github.com/financify-dev/financify/internal/config"
	"github.com/financify-dev/financify/internal/ledger"
	"github.com/financify-dev/financify/internal/store"
)

// session wires the services a command needs over one project directory.
type session struct {
	cfg     *config.Config
	catalog *accounts.Service
	ledger  *ledger.Ledger
	db      *store.Bolt
}

// openSession loads config (falling back to defaults when financify.yaml is
// absent), opens the store, and loads the ledger. A never-written store is
// seeded with the demonstration dataset.
func openSession(dir string) (*session, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default("Financify")
	}

	db, err := store.OpenBolt(filepath.Join(dir, cfg.Data.File))
	if err != nil {
		return nil, err
	}

	led := ledger.New(db, nil)
	if err := led.Load(); err != nil {
		db.Close()
		return nil, err
	}

	return &session{
		cfg:     cfg,
		catalog: accounts.NewService(accounts.DefaultChart()),
		ledger:  led,
		db:      db,
	}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}
