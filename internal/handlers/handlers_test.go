package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/operator"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: ledger.NewValidationError("amount", "must be greater than 0"), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("find: %w", sqlconfig.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: sqlconfig.ErrConflict, want: http.StatusConflict},
		{name: "email taken", err: auth.ErrEmailTaken, want: http.StatusConflict},
		{name: "account holder", err: actions.ErrAccountHolderProfile, want: http.StatusConflict},
		{name: "check violation", err: errors.Join(sqlconfig.ErrCheckViolation, errors.New("check")), want: http.StatusBadRequest},
		{name: "bad reference", err: errors.Join(sqlconfig.ErrInvalidReference, errors.New("fk")), want: http.StatusUnprocessableEntity},
		{name: "credentials", err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "stopped", err: operator.ErrStopped, want: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(t, Error(context.Background(), tt.err, "failed")))
		})
	}
}

func TestError_ValidationDetailsPerField(t *testing.T) {
	ve := &ledger.ValidationErrors{}
	ve.Add("amount", "must be greater than 0")
	ve.Add("category", "is required")

	err := Error(context.Background(), ve, "failed")

	var model *huma.ErrorModel
	require.ErrorAs(t, err, &model)
	require.Len(t, model.Errors, 2)
	assert.Equal(t, "body.amount", model.Errors[0].Location)
	assert.Equal(t, "is required", model.Errors[1].Message)
}

func TestCaller_Missing(t *testing.T) {
	_, err := Caller(context.Background())

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestParseID(t *testing.T) {
	_, err := ParseID("nope")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), month)

	month, err = ParseMonth("")
	require.NoError(t, err)
	assert.True(t, month.IsZero())

	_, err = ParseMonth("March")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
