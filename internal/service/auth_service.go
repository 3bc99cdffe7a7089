package service

import (
	"context"
	"errors"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// TokenManager issues and revokes access tokens. *auth.TokenIssuer
// satisfies it.
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (auth.Token, error)
	Revoke(identity auth.Identity)
}

// Account is the signed-in user without credentials.
type Account struct {
	ID    uuid.UUID
	Email string
}

// Session is returned by sign-up and sign-in.
type Session struct {
	Token   auth.Token
	Account Account
	Profile *ledger.Profile
}

// AuthService handles accounts and their credentials.
type AuthService struct {
	storage   *storage.Storage
	processor ActionProcessor
	tokens    TokenManager
}

func NewAuthService(store *storage.Storage, processor ActionProcessor, tokens TokenManager) *AuthService {
	return &AuthService{
		storage:   store,
		processor: processor,
		tokens:    tokens,
	}
}

// SignUp creates the account and its Admin profile, then signs it in. An
// empty name falls back to the local part of the email.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (Session, error) {
	email = normalizeEmail(email)
	ve := &ledger.ValidationErrors{}
	if err := checkmail.ValidateFormat(email); err != nil {
		ve.Add("email", "is not a valid address")
	}
	if len(password) < auth.MinPasswordLength {
		ve.Add("password", auth.ErrWeakPassword.Error())
	}
	if err := ve.Err(); err != nil {
		return Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	action := &actions.RegisterUser{Email: email, PasswordHash: hash, Name: name}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrConflict) {
			return Session{}, auth.ErrEmailTaken
		}
		return Session{}, err
	}

	profile := toLedgerProfile(action.Profile)
	return s.session(action.User, &profile)
}

// SignIn checks the credentials. Unknown emails and wrong passwords are the
// same auth.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (Session, error) {
	user, err := s.storage.Users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return Session{}, auth.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return Session{}, err
	}

	var profile *ledger.Profile
	row, err := s.storage.Profiles.FindByID(ctx, user.ID, user.ID)
	switch {
	case err == nil:
		p := toLedgerProfile(row)
		profile = &p
	case !errors.Is(err, sqlconfig.ErrNotFound):
		return Session{}, err
	}

	return s.session(user, profile)
}

// SignOut revokes the token the caller authenticated with.
func (s *AuthService) SignOut(_ context.Context, identity auth.Identity) {
	s.tokens.Revoke(identity)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (Account, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return Account{}, err
	}
	return Account{ID: user.ID, Email: user.Email}, nil
}

// UpdatePassword replaces the password after checking the current one.
func (s *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if len(next) < auth.MinPasswordLength {
		return ledger.NewValidationError("newPassword", auth.ErrWeakPassword.Error())
	}

	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.CheckPassword(user.PasswordHash, current); err != nil {
		return err
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.ChangePassword{UserID: userID, PasswordHash: hash})
}

func (s *AuthService) session(user *sqlconfig.User, profile *ledger.Profile) (Session, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:   token,
		Account: Account{ID: user.ID, Email: user.Email},
		Profile: profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
