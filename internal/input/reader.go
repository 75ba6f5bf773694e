// Package input decodes the transaction CSV into raw records.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	interfaces "github.com/sheikh-saqib/transaction-processing-engine/internal/interfaces"
	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

var header = []string{"type", "client", "tx", "amount"}

// Reader lazily decodes raw transaction records from CSV input. Rows are
// read one at a time; a row that fails to decode is reported as an error
// from Next without poisoning the rows after it.
type Reader struct {
	csv *csv.Reader
}

// NewReader wraps r and consumes the header line. A missing or malformed
// header is a hard error: nothing sensible can be read from such a file.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// The amount column may be absent entirely on dispute/resolve/chargeback
	// rows, so rows have three or four fields.
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(first) != len(header) {
		return nil, fmt.Errorf("malformed csv header: %q", strings.Join(first, ","))
	}
	for i, name := range header {
		if strings.TrimSpace(first[i]) != name {
			return nil, fmt.Errorf("malformed csv header: %q", strings.Join(first, ","))
		}
	}
	return &Reader{csv: cr}, nil
}

// Next returns the next decoded row, or io.EOF once the input is exhausted.
func (r *Reader) Next() (models.RawRecord, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return models.RawRecord{}, err
	}
	if len(fields) < 3 {
		return models.RawRecord{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return models.RawRecord{}, fmt.Errorf("invalid client id %q", fields[1])
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return models.RawRecord{}, fmt.Errorf("invalid transaction id %q", fields[2])
	}

	var amount string
	if len(fields) > 3 {
		amount = strings.TrimSpace(fields[3])
	}

	return models.RawRecord{
		Type:   strings.TrimSpace(fields[0]),
		Client: models.ClientID(client),
		Tx:     models.TxID(tx),
		Amount: amount,
	}, nil
}

// Compile-time check: ensure Reader implements interfaces.RecordSource
var _ interfaces.RecordSource = (*Reader)(nil)
