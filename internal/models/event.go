package models

import "fmt"

// ClientID identifies the client whose account a transaction targets.
type ClientID uint16

// TxID is the id of a transaction. Deposits are recorded under their TxID so
// that disputes, resolves and chargebacks can reference them later.
type TxID uint32

// EventKind distinguishes the five transaction types handled by the engine.
type EventKind int

const (
	Deposit EventKind = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (k EventKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ParseEventKind maps an input type keyword to its EventKind.
func ParseEventKind(s string) (EventKind, bool) {
	switch s {
	case "deposit":
		return Deposit, true
	case "withdrawal":
		return Withdrawal, true
	case "dispute":
		return Dispute, true
	case "resolve":
		return Resolve, true
	case "chargeback":
		return Chargeback, true
	}
	return 0, false
}

// RawRecord is one decoded input row, before validation. Amount is the raw
// column text; it is empty when the column was blank or missing.
type RawRecord struct {
	Type   string
	Client ClientID
	Tx     TxID
	Amount string
}

// Event is a validated transaction ready for the state machine. Amount is
// meaningful only for Deposit and Withdrawal.
type Event struct {
	Kind   EventKind
	Client ClientID
	Tx     TxID
	Amount Money
}

// NewEvent validates a raw record and returns the normalised event.
// Dispute, resolve and chargeback rows may carry an amount; it is ignored.
func NewEvent(raw RawRecord) (Event, *Error) {
	kind, ok := ParseEventKind(raw.Type)
	if !ok {
		return Event{}, ValidationError(raw.Client, raw.Tx, fmt.Sprintf("unknown transaction type %q", raw.Type))
	}

	ev := Event{Kind: kind, Client: raw.Client, Tx: raw.Tx}
	if kind != Deposit && kind != Withdrawal {
		return ev, nil
	}

	if raw.Amount == "" {
		return Event{}, ValidationError(raw.Client, raw.Tx, fmt.Sprintf("no amount provided for %s", kind))
	}
	amount, err := ParseMoney(raw.Amount)
	if err != nil {
		return Event{}, ValidationError(raw.Client, raw.Tx, err.Error())
	}
	if !amount.IsPositive() {
		verb := "deposited"
		if kind == Withdrawal {
			verb = "withdrawn"
		}
		return Event{}, ValidationError(raw.Client, raw.Tx, fmt.Sprintf("the %s amount must be positive", verb))
	}
	ev.Amount = amount
	return ev, nil
}

// TransactionRecord is the value-copy projection of a successfully applied
// event, delivered to the success callback.
type TransactionRecord struct {
	Kind      EventKind
	Client    ClientID
	Tx        TxID
	Amount    Money
	HasAmount bool
}

// NewTransactionRecord projects an applied event into its success record.
func NewTransactionRecord(ev Event) TransactionRecord {
	return TransactionRecord{
		Kind:      ev.Kind,
		Client:    ev.Client,
		Tx:        ev.Tx,
		Amount:    ev.Amount,
		HasAmount: ev.Kind == Deposit || ev.Kind == Withdrawal,
	}
}

func (r TransactionRecord) String() string {
	if r.HasAmount {
		return fmt.Sprintf("%s client %d tx %d amount %s", r.Kind, r.Client, r.Tx, r.Amount)
	}
	return fmt.Sprintf("%s client %d tx %d", r.Kind, r.Client, r.Tx)
}
