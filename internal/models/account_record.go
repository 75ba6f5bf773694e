package models

// AccountRecord is the final output projection of one client account.
// Total is computed from available and held, never stored by the engine.
type AccountRecord struct {
	Client    ClientID
	Available Money
	Held      Money
	Total     Money
	Locked    bool
}
