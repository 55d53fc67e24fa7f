package common

import (
	"errors"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kosearch/subcollect/internal/errors"
)

func TestHandlePostgreSQLError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "unique violation maps to conflict",
			err:      &pgconn.PgError{Code: "23505"},
			wantCode: apperrors.CodeConflict,
		},
		{
			name:     "foreign key violation maps to dependency",
			err:      &pgconn.PgError{Code: "23503"},
			wantCode: apperrors.CodeDependency,
		},
		{
			name:     "not null violation maps to invalid argument",
			err:      &pgconn.PgError{Code: "23502"},
			wantCode: apperrors.CodeInvalidArg,
		},
		{
			name:     "server connection exception maps to unavailable",
			err:      &pgconn.PgError{Code: "08006"},
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "too many connections maps to unavailable",
			err:      &pgconn.PgError{Code: "53300"},
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "unknown server code maps to internal",
			err:      &pgconn.PgError{Code: "22012"},
			wantCode: apperrors.CodeInternal,
		},
		{
			name:     "plain error maps to internal",
			err:      errors.New("scan failed"),
			wantCode: apperrors.CodeInternal,
		},
		{
			name:     "eof from dropped connection maps to unavailable",
			err:      io.EOF,
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "unexpected eof maps to unavailable",
			err:      io.ErrUnexpectedEOF,
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "network op error maps to unavailable",
			err:      &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET},
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "connection refused maps to unavailable",
			err:      syscall.ECONNREFUSED,
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name:     "broken pipe maps to unavailable",
			err:      syscall.EPIPE,
			wantCode: apperrors.CodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandlePostgreSQLError(tt.err, "operation failed")
			require.NotNil(t, result)
			assert.Equal(t, tt.wantCode, apperrors.Code(result))
		})
	}
}

func TestHandlePostgreSQLError_Nil(t *testing.T) {
	assert.Nil(t, HandlePostgreSQLError(nil, "operation failed"))
}
