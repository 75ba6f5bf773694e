package interfaces

import "github.com/sheikh-saqib/transaction-processing-engine/internal/models"

// RecordSource is a lazy sequence of decoded input rows.
type RecordSource interface {
	// Next returns the next raw record. It returns io.EOF once the source is
	// exhausted. Any other error is a per-row decode failure; the source
	// stays usable and the caller is expected to keep consuming.
	Next() (models.RawRecord, error)
}
