package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/logging"
)

// SecurityScheme is the OpenAPI security scheme name of the bearer token.
const SecurityScheme = "bearer"

// BearerSecurity marks an operation as requiring a signed-in user.
var BearerSecurity = []map[string][]string{{SecurityScheme: {}}}

// TokenParser turns a bearer token into an Identity.
type TokenParser interface {
	Parse(value string) (Identity, error)
}

// Middleware authenticates operations that declare BearerSecurity and leaves
// the others untouched.
func Middleware(api huma.API, parser TokenParser) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresAuth(ctx.Operation()) {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		value, found := strings.CutPrefix(header, "Bearer ")
		if !found || value == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		identity, err := parser.Parse(value)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		logging.GetLogData(ctx.Context()).AddData("userID", identity.UserID.String())
		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

func requiresAuth(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}
	return false
}
