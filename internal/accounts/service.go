package accounts

import "github.com/financify-dev/financify/internal/model"

// UnknownName is the display fallback for entries whose account id is not in
// the catalog. Such entries never contribute to any computed balance.
const UnknownName = "Unknown Account"

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// All returns all accounts in catalog order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Name returns the display name for an account ID, falling back to
// UnknownName when the id is not in the catalog.
func (s *Service) Name(id string) string {
	if a, ok := s.byID[id]; ok {
		return a.Name
	}
	return UnknownName
}

// ByType returns all accounts of the given type, in catalog order.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
