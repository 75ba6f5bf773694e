// Package output renders final account records as CSV.
package output

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

// WriteAccounts writes the account records to w as CSV, sorted by client id.
// Amounts are rendered in normalised form: trailing zeros trimmed, integers
// without a fractional point.
func WriteAccounts(w io.Writer, records []models.AccountRecord) error {
	sorted := make([]models.AccountRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Client < sorted[j].Client })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, record := range sorted {
		row := []string{
			strconv.FormatUint(uint64(record.Client), 10),
			record.Available.String(),
			record.Held.String(),
			record.Total.String(),
			strconv.FormatBool(record.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
