package engine

import (
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	interfaces "github.com/sheikh-saqib/transaction-processing-engine/internal/interfaces"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/storage/memory"
)

// ProcessParallel processes records with a client-sharded worker pipeline:
//
//	dispatcher ── client mod N ──► worker[0..N-1], each owning an account partition
//	workers ── success / error ──► two dedicated callback goroutines
//
// All records of a client reach the same worker, so per-client order is
// input order. Workers share nothing; the only cross-goroutine data are the
// bounded channels. Callbacks may be invoked concurrently only with records
// of other rows, never twice for the same row, and each callback runs on a
// single dedicated goroutine.
//
// The result is eager: ProcessParallel returns after every worker and both
// callback goroutines have finished, with the concatenation of the worker
// partitions.
func ProcessParallel(
	src interfaces.RecordSource,
	onSuccess func(models.TransactionRecord),
	onError func(*models.Error),
	opts ...Option,
) []models.AccountRecord {
	o := buildOptions(opts)

	inputs := make([]chan models.RawRecord, o.workers)
	for i := range inputs {
		inputs[i] = make(chan models.RawRecord, o.capacity)
	}
	successes := make(chan models.TransactionRecord, o.capacity)
	failures := make(chan *models.Error, o.capacity)

	partitions := make([][]models.AccountRecord, o.workers)

	var workers errgroup.Group
	for i := range o.workers {
		workers.Go(func() error {
			store := memory.NewAccountStore()
			for raw := range inputs[i] {
				record, applyErr := applyRecord(raw, store)
				if applyErr != nil {
					failures <- applyErr
					continue
				}
				successes <- record
			}
			partitions[i] = store.Records()
			return nil
		})
	}

	var callbacks errgroup.Group
	callbacks.Go(func() error {
		for record := range successes {
			onSuccess(record)
		}
		return nil
	})
	callbacks.Go(func() error {
		for failure := range failures {
			onError(failure)
		}
		return nil
	})

	// Dispatch. Rows that never decoded to a record carry no client id and
	// go straight to the error channel.
	for {
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failures <- models.CSVError(err)
			continue
		}
		inputs[int(raw.Client)%o.workers] <- raw
	}

	// Teardown: close worker inputs, wait for workers to drain, then close
	// the result channels so the callback goroutines exit.
	for _, ch := range inputs {
		close(ch)
	}
	_ = workers.Wait()
	close(successes)
	close(failures)
	_ = callbacks.Wait()

	var records []models.AccountRecord
	for _, partition := range partitions {
		records = append(records, partition...)
	}
	return records
}
