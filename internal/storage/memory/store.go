package memory

import (
	interfaces "github.com/sheikh-saqib/transaction-processing-engine/internal/interfaces"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/ledger"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

// AccountStore is an in-memory account partition. A store is exclusively
// owned by a single execution context, so access is unsynchronised.
type AccountStore struct {
	accounts map[models.ClientID]*ledger.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[models.ClientID]*ledger.Account),
	}
}

func (s *AccountStore) GetOrCreate(client models.ClientID) *ledger.Account {
	if account, ok := s.accounts[client]; ok {
		return account
	}
	account := ledger.NewAccount()
	s.accounts[client] = account
	return account
}

func (s *AccountStore) Records() []models.AccountRecord {
	records := make([]models.AccountRecord, 0, len(s.accounts))
	for client, account := range s.accounts {
		records = append(records, account.Record(client))
	}
	return records
}

// Compile-time check: ensure AccountStore implements interfaces.AccountStore
var _ interfaces.AccountStore = (*AccountStore)(nil)
