package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/transaction-processing-engine/internal/models"
)

func TestNewReader(t *testing.T) {
	t.Run("accepts the expected header", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("type,client,tx,amount\n"))
		assert.NoError(t, err)
	})

	t.Run("tolerates whitespace in the header", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("type, client, tx, amount\n"))
		assert.NoError(t, err)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		for _, header := range []string{
			"kind,client,tx,amount\n",
			"type,client,tx\n",
			"type,client,tx,amount,extra\n",
		} {
			_, err := NewReader(strings.NewReader(header))
			assert.Error(t, err, "header %q", header)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewReader(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestNext(t *testing.T) {
	t.Run("decodes rows with and without amount", func(t *testing.T) {
		r, err := NewReader(strings.NewReader(
			"type,client,tx,amount\n" +
				"deposit, 1, 2, 1.5\n" +
				"dispute, 1, 2,\n" +
				"resolve,1,2\n"))
		require.NoError(t, err)

		record, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, models.RawRecord{Type: "deposit", Client: 1, Tx: 2, Amount: "1.5"}, record)

		record, err = r.Next()
		require.NoError(t, err)
		assert.Equal(t, models.RawRecord{Type: "dispute", Client: 1, Tx: 2}, record)

		record, err = r.Next()
		require.NoError(t, err)
		assert.Equal(t, models.RawRecord{Type: "resolve", Client: 1, Tx: 2}, record)

		_, err = r.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("a bad row does not poison the rows after it", func(t *testing.T) {
		r, err := NewReader(strings.NewReader(
			"type,client,tx,amount\n" +
				"deposit, not-a-client, 1, 1.0\n" +
				"deposit, 1, not-a-tx, 1.0\n" +
				"deposit, 2\n" +
				"deposit, 2, 2, 2.0\n"))
		require.NoError(t, err)

		_, err = r.Next()
		assert.ErrorContains(t, err, "invalid client id")

		_, err = r.Next()
		assert.ErrorContains(t, err, "invalid transaction id")

		_, err = r.Next()
		assert.ErrorContains(t, err, "expected at least 3 fields")

		record, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, models.RawRecord{Type: "deposit", Client: 2, Tx: 2, Amount: "2.0"}, record)

		_, err = r.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("client id out of range is rejected", func(t *testing.T) {
		r, err := NewReader(strings.NewReader(
			"type,client,tx,amount\n" +
				"deposit, 65536, 1, 1.0\n"))
		require.NoError(t, err)

		_, err = r.Next()
		assert.ErrorContains(t, err, "invalid client id")
	})
}
