package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Table(t *testing.T) {
	cause := errors.New("connection reset by peer")

	tests := []struct {
		name       string
		err        error
		notFound   bool
		dataAccess bool
		msg        string
	}{
		{
			name:     "not found with cause",
			err:      NotFound("user", "get", Key("id", 7), cause),
			notFound: true,
			msg:      "user get (id = 7): not found: connection reset by peer",
		},
		{
			name:       "data access with cause",
			err:        DataAccess("account type", "update", Key("id", 3), cause),
			dataAccess: true,
			msg:        "account type update (id = 3): data access failure: connection reset by peer",
		},
		{
			name:     "not found without cause",
			err:      NotFound("user", "delete", Key("id", 1), nil),
			notFound: true,
			msg:      "user delete (id = 1): not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.dataAccess, IsDataAccess(tt.err))
			assert.EqualError(t, tt.err, tt.msg)

			var se *Error
			require.True(t, errors.As(tt.err, &se))
			assert.NotEmpty(t, se.Op)
			assert.NotEmpty(t, se.Key)
		})
	}
}

func TestError_KeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := DataAccess("user", "create", Key("email", "a@x.com"), cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrDataAccess)
	assert.NotErrorIs(t, err, ErrNotFound)
}
