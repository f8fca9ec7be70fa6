package userdetails_test

import (
	"testing"
	"time"

	"go-ums/internal/userdetails"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := userdetails.ParseDate("1990-04-02")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC 3339", func(t *testing.T) {
		got, err := userdetails.ParseDate("1990-04-02T10:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(1990, 4, 2, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("other layouts are rejected", func(t *testing.T) {
		for _, s := range []string{"02/04/1990", "02-04-1990", "April 2, 1990", ""} {
			_, err := userdetails.ParseDate(s)
			assert.Error(t, err, s)
		}
	})
}
