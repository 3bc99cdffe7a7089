// Package auth serves sign-up, sign-in and account endpoints.
package auth

import (
	"time"

	"github.com/carson-networks/household-server/internal/handlers/v1/profile"
	"github.com/carson-networks/household-server/internal/service"
)

type Account struct {
	ID    string `json:"id" doc:"Account UUID"`
	Email string `json:"email" doc:"Sign-in email"`
}

// Session is returned by sign-up and sign-in.
type Session struct {
	Token     string           `json:"token" doc:"Bearer access token"`
	ExpiresAt string           `json:"expiresAt" doc:"RFC3339 expiry of the token"`
	Account   Account          `json:"account"`
	Profile   *profile.Profile `json:"profile,omitempty" doc:"The account holder's profile"`
}

type Credentials struct {
	Email    string `json:"email" required:"true" maxLength:"254" doc:"Sign-in email"`
	Password string `json:"password" required:"true" doc:"Password"`
}

func toSession(session service.Session) Session {
	out := Session{
		Token:     session.Token.Value,
		ExpiresAt: session.Token.ExpiresAt.UTC().Format(time.RFC3339),
		Account:   toAccount(session.Account),
	}
	if session.Profile != nil {
		p := profile.ToProfile(*session.Profile)
		out.Profile = &p
	}
	return out
}

func toAccount(account service.Account) Account {
	return Account{ID: account.ID.String(), Email: account.Email}
}
