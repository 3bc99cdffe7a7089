package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError is returned when input is rejected before any persistence call.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// ValidationErrors collects every field failure of one input.
type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	msgs := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func (ve *ValidationErrors) Add(field, msg string) {
	ve.Errors = append(ve.Errors, NewValidationError(field, msg))
}

// Unwrap lets errors.As reach the individual field errors.
func (ve *ValidationErrors) Unwrap() []error {
	return ve.Errors
}

// Err returns nil when nothing was collected.
func (ve *ValidationErrors) Err() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

func IsValidationError(err error) bool {
	var single *ValidationError
	if errors.As(err, &single) {
		return true
	}
	var many *ValidationErrors
	return errors.As(err, &many)
}

const (
	maxDescriptionLength = 500
	// moneyPlaces is the scale of every stored amount.
	moneyPlaces = 2
)

// TooPreciseMsg is the validation message for amounts failing TooPrecise.
const TooPreciseMsg = "must have at most 2 decimal places"

// TooPrecise reports whether d carries more decimal places than a stored amount.
func TooPrecise(d decimal.Decimal) bool {
	return !d.Equal(d.Round(moneyPlaces))
}

// Validate checks the invariants a transaction must hold before it is written.
func (t Transaction) Validate() error {
	ve := &ValidationErrors{}
	if t.Date.IsZero() {
		ve.Add("date", "is required")
	}
	switch {
	case !t.Amount.IsPositive():
		ve.Add("amount", "must be greater than 0")
	case TooPrecise(t.Amount):
		ve.Add("amount", TooPreciseMsg)
	}
	if !t.Type.Valid() {
		ve.Add("type", "must be income or expense")
	}
	if strings.TrimSpace(t.Category) == "" {
		ve.Add("category", "is required")
	}
	if !t.Currency.Valid() {
		ve.Add("currency", "must be IDR or USD")
	}
	if len(t.Description) > maxDescriptionLength {
		ve.Add("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLength))
	}
	return ve.Err()
}

func (c BudgetCategory) Validate() error {
	ve := &ValidationErrors{}
	if strings.TrimSpace(c.Name) == "" {
		ve.Add("name", "is required")
	}
	switch {
	case c.Budget.IsNegative():
		ve.Add("budget", "must not be negative")
	case TooPrecise(c.Budget):
		ve.Add("budget", TooPreciseMsg)
	}
	return ve.Err()
}

func (g SavingsGoal) Validate() error {
	ve := &ValidationErrors{}
	if strings.TrimSpace(g.Title) == "" {
		ve.Add("title", "is required")
	}
	switch {
	case !g.TargetAmount.IsPositive():
		ve.Add("targetAmount", "must be greater than 0")
	case TooPrecise(g.TargetAmount):
		ve.Add("targetAmount", TooPreciseMsg)
	}
	switch {
	case g.CurrentAmount.IsNegative():
		ve.Add("currentAmount", "must not be negative")
	case TooPrecise(g.CurrentAmount):
		ve.Add("currentAmount", TooPreciseMsg)
	}
	return ve.Err()
}

func (p Profile) Validate() error {
	ve := &ValidationErrors{}
	if strings.TrimSpace(p.Name) == "" {
		ve.Add("name", "is required")
	}
	if !p.Role.Valid() {
		ve.Add("role", "must be Admin, Member or Viewer")
	}
	if !p.Status.Valid() {
		ve.Add("status", "must be online or offline")
	}
	return ve.Err()
}
