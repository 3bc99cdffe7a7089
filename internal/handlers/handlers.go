// Package handlers holds what the versioned HTTP handlers share: the caller
// lookup and the mapping of service errors to HTTP problems.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/operator"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const (
	// DateLayout is the wire format of calendar dates.
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format of a reference month.
	MonthLayout = "2006-01"
)

// Caller returns the signed-in user of the request.
func Caller(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, huma.Error401Unauthorized("not signed in")
	}
	return identity, nil
}

// CallerID is Caller for handlers that only need the user id.
func CallerID(ctx context.Context) (uuid.UUID, error) {
	identity, err := Caller(ctx)
	return identity.UserID, err
}

// ParseID parses a path id, answering 400 when it is not a UUID.
func ParseID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

// ParseMonth parses a YYYY-MM query value. Empty means the current month and
// returns the zero time.
func ParseMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	month, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "month must be YYYY-MM", err)
	}
	return month, nil
}

// Error maps a service error to an HTTP problem. msg describes the failed
// operation and is only used for unexpected errors, which are also attached
// to the request log.
func Error(ctx context.Context, err error, msg string) error {
	switch {
	case ledger.IsValidationError(err):
		return huma.NewError(http.StatusBadRequest, "validation failed", validationDetails(err)...)
	case errors.Is(err, sqlconfig.ErrCheckViolation):
		return huma.Error400BadRequest("value out of range")
	case errors.Is(err, sqlconfig.ErrNotFound):
		return huma.Error404NotFound("not found")
	case errors.Is(err, auth.ErrEmailTaken):
		return huma.Error409Conflict(auth.ErrEmailTaken.Error())
	case errors.Is(err, sqlconfig.ErrConflict):
		return huma.Error409Conflict("already exists")
	case errors.Is(err, actions.ErrAccountHolderProfile):
		return huma.Error409Conflict(actions.ErrAccountHolderProfile.Error())
	case errors.Is(err, sqlconfig.ErrInvalidReference):
		return huma.Error422UnprocessableEntity("referenced record does not exist")
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, operator.ErrStopped), errors.Is(err, context.DeadlineExceeded):
		logging.GetLogData(ctx).SetError(err)
		return huma.Error503ServiceUnavailable("try again later")
	}

	logging.GetLogData(ctx).SetError(err)
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

func validationDetails(err error) []error {
	var many *ledger.ValidationErrors
	if errors.As(err, &many) {
		details := make([]error, 0, len(many.Errors))
		for _, fieldErr := range many.Errors {
			details = append(details, validationDetail(fieldErr))
		}
		return details
	}
	return []error{validationDetail(err)}
}

func validationDetail(err error) error {
	var single *ledger.ValidationError
	if !errors.As(err, &single) {
		return err
	}
	detail := &huma.ErrorDetail{Message: single.Msg}
	if single.Field != "" {
		detail.Location = "body." + single.Field
	}
	return detail
}
