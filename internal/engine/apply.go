package engine

import (
	interfaces "github.com/sheikh-saqib/transaction-processing-engine/internal/interfaces"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

// applyRecord routes one raw record into the owning account: the account is
// fetched (created on first reference), the record is validated, and the
// matching state-machine operation runs. Exactly one of the two return
// values is set.
//
// The account is created before validation, so a client referenced only by
// rejected records still appears in the final output.
func applyRecord(raw models.RawRecord, store interfaces.AccountStore) (models.TransactionRecord, *models.Error) {
	account := store.GetOrCreate(raw.Client)

	ev, verr := models.NewEvent(raw)
	if verr != nil {
		return models.TransactionRecord{}, verr
	}

	var err error
	switch ev.Kind {
	case models.Deposit:
		err = account.Deposit(ev.Tx, ev.Amount)
	case models.Withdrawal:
		err = account.Withdraw(ev.Amount)
	case models.Dispute:
		err = account.Dispute(ev.Tx)
	case models.Resolve:
		err = account.Resolve(ev.Tx)
	case models.Chargeback:
		err = account.Chargeback(ev.Tx)
	}
	if err != nil {
		return models.TransactionRecord{}, models.ValidationError(ev.Client, ev.Tx, err.Error())
	}
	return models.NewTransactionRecord(ev), nil
}
