package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

func record(client models.ClientID, available, held string, locked bool) models.AccountRecord {
	a := models.MustMoney(available)
	h := models.MustMoney(held)
	return models.AccountRecord{
		Client:    client,
		Available: a,
		Held:      h,
		Total:     a.Add(h),
		Locked:    locked,
	}
}

func TestWriteAccounts(t *testing.T) {
	t.Run("rows are sorted by client with normalised amounts", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteAccounts(&buf, []models.AccountRecord{
			record(2, "2.0000", "0", false),
			record(1, "1.5", "0.5", true),
		})
		require.NoError(t, err)

		assert.Equal(t,
			"client,available,held,total,locked\n"+
				"1,1.5,0.5,2,true\n"+
				"2,2,0,2,false\n",
			buf.String())
	})

	t.Run("no accounts yields only the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteAccounts(&buf, nil))
		assert.Equal(t, "client,available,held,total,locked\n", buf.String())
	})

	t.Run("input slice is left untouched", func(t *testing.T) {
		records := []models.AccountRecord{record(2, "1", "0", false), record(1, "1", "0", false)}
		var buf bytes.Buffer
		require.NoError(t, WriteAccounts(&buf, records))
		assert.Equal(t, models.ClientID(2), records[0].Client)
	})
}
