package ledger

import (
	"errors"
	"fmt"

	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

// Account is the per-client aggregate: the available and held balances, the
// frozen flag, and the deposit ledger backing the dispute protocol.
//
// An Account is exclusively owned by a single execution context (the
// sequential orchestrator, or one worker in parallel mode), so its methods
// take no locks.
type Account struct {
	// accepted holds deposits eligible for dispute; disputed holds deposits
	// currently under dispute. held always equals the sum over disputed.
	accepted map[models.TxID]models.Money
	disputed map[models.TxID]models.Money

	available models.Money
	held      models.Money
	frozen    bool
}

func NewAccount() *Account {
	return &Account{
		accepted: make(map[models.TxID]models.Money),
		disputed: make(map[models.TxID]models.Money),
	}
}

// Deposit credits the available balance and records the deposit under its tx
// id. A reused id overwrites the previous undisputed deposit.
func (a *Account) Deposit(tx models.TxID, amount models.Money) error {
	if err := a.ensureNotFrozen(); err != nil {
		return err
	}
	a.available = a.available.Add(amount)
	a.accepted[tx] = amount
	return nil
}

// Withdraw debits the available balance. Withdrawals are not recorded in the
// deposit ledger and can never be disputed.
func (a *Account) Withdraw(amount models.Money) error {
	if err := a.ensureNotFrozen(); err != nil {
		return err
	}
	if a.available.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient funds to withdraw %s", amount)
	}
	a.available = a.available.Sub(amount)
	return nil
}

// Dispute moves the funds of an accepted deposit from available to held.
func (a *Account) Dispute(tx models.TxID) error {
	if err := a.ensureNotFrozen(); err != nil {
		return err
	}
	if _, already := a.disputed[tx]; already {
		return errors.New("transaction is already disputed")
	}
	amount, ok := a.accepted[tx]
	if !ok {
		return errors.New("dispute references an unknown transaction")
	}
	if a.available.Cmp(amount) < 0 {
		return errors.New("insufficient available funds for dispute")
	}
	delete(a.accepted, tx)
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	a.disputed[tx] = amount
	return nil
}

// Resolve releases a disputed deposit back to the available balance. The
// deposit becomes eligible for dispute again.
func (a *Account) Resolve(tx models.TxID) error {
	if err := a.ensureNotFrozen(); err != nil {
		return err
	}
	amount, ok := a.disputed[tx]
	if !ok {
		return errors.New("resolve references an undisputed transaction")
	}
	delete(a.disputed, tx)
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	a.accepted[tx] = amount
	return nil
}

// Chargeback withdraws the held funds of a disputed deposit, removes it from
// the ledger and freezes the account. Freezing is terminal: every further
// operation on the account is rejected.
func (a *Account) Chargeback(tx models.TxID) error {
	if err := a.ensureNotFrozen(); err != nil {
		return err
	}
	amount, ok := a.disputed[tx]
	if !ok {
		return errors.New("chargeback references an undisputed transaction")
	}
	delete(a.disputed, tx)
	a.held = a.held.Sub(amount)
	a.frozen = true
	return nil
}

func (a *Account) ensureNotFrozen() error {
	if a.frozen {
		return errors.New("account frozen")
	}
	return nil
}

func (a *Account) Available() models.Money {
	return a.available
}

func (a *Account) Held() models.Money {
	return a.held
}

func (a *Account) Frozen() bool {
	return a.frozen
}

// Record projects the account into its output row.
func (a *Account) Record(client models.ClientID) models.AccountRecord {
	return models.AccountRecord{
		Client:    client,
		Available: a.available,
		Held:      a.held,
		Total:     a.available.Add(a.held),
		Locked:    a.frozen,
	}
}
