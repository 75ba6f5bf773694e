package models

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDisplay(t *testing.T) {
	t.Run("csv error wraps the cause", func(t *testing.T) {
		err := CSVError(io.ErrUnexpectedEOF)
		assert.Equal(t, "csv error: unexpected EOF", err.Error())
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})

	t.Run("validation error carries client and tx context", func(t *testing.T) {
		err := ValidationError(7, 42, "account frozen")
		assert.Equal(t, "validation error: client 7, tx 42: account frozen", err.Error())
	})
}
