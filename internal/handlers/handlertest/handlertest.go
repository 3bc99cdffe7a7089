// Package handlertest builds humatest APIs for handler tests.
package handlertest

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
)

// NewAPI returns a test API whose requests are made as userID. A nil userID
// leaves requests anonymous.
func NewAPI(t *testing.T, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if userID != uuid.Nil {
		identity := auth.Identity{UserID: userID, Email: "test@example.com", TokenID: "test-token"}
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), identity)))
		})
	}
	return api
}
