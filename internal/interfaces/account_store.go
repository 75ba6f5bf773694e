package interfaces

import (
	"github.com/sheikh-saqib/transaction-processing-engine/internal/ledger"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

// AccountStore holds the account partition owned by one execution context.
type AccountStore interface {
	// GetOrCreate returns the account of the given client, creating it on
	// first reference. Creation alone marks the client as touched, so it
	// appears in the final output even if every one of its events failed.
	GetOrCreate(client models.ClientID) *ledger.Account

	// Records projects every touched account into its output row.
	Records() []models.AccountRecord
}
