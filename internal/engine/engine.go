// Package engine orchestrates the processing of transaction records into
// final account states. It offers two execution modes with identical
// observable semantics: a lazy single-goroutine pipeline (Process) and a
// client-sharded parallel pipeline (ProcessParallel).
package engine

import (
	"errors"
	"io"
	"iter"

	interfaces "github.com/sheikh-saqib/transaction-processing-engine/internal/interfaces"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/storage/memory"
)

// Process consumes records from src in order and applies them to in-memory
// account state. For every record exactly one of the two callbacks fires:
// onSuccess with the applied transaction, or onError with the reason the
// record was skipped. Errors never abort the run.
//
// The returned sequence is lazy: the input is drained on first iteration,
// then the final record of every touched account is yielded, in no
// particular order.
func Process(
	src interfaces.RecordSource,
	onSuccess func(models.TransactionRecord),
	onError func(*models.Error),
) iter.Seq[models.AccountRecord] {
	return func(yield func(models.AccountRecord) bool) {
		store := memory.NewAccountStore()
		for {
			raw, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				onError(models.CSVError(err))
				continue
			}
			record, applyErr := applyRecord(raw, store)
			if applyErr != nil {
				onError(applyErr)
				continue
			}
			onSuccess(record)
		}
		for _, record := range store.Records() {
			if !yield(record) {
				return
			}
		}
	}
}
