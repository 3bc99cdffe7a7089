package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// tableMocks back both the read tables of Storage and the writer the fake
// processor hands to actions.
type tableMocks struct {
	transactions *sqlconfig.MockITransactionTable
	categories   *sqlconfig.MockIBudgetCategoryTable
	goals        *sqlconfig.MockISavingsGoalTable
	profiles     *sqlconfig.MockIProfileTable
	users        *sqlconfig.MockIUserTable
}

func newTableMocks(t *testing.T) (*storage.Storage, *storage.Writer, tableMocks) {
	t.Helper()
	m := tableMocks{
		transactions: sqlconfig.NewMockITransactionTable(t),
		categories:   sqlconfig.NewMockIBudgetCategoryTable(t),
		goals:        sqlconfig.NewMockISavingsGoalTable(t),
		profiles:     sqlconfig.NewMockIProfileTable(t),
		users:        sqlconfig.NewMockIUserTable(t),
	}
	store := &storage.Storage{
		Transactions:     m.transactions,
		BudgetCategories: m.categories,
		SavingsGoals:     m.goals,
		Profiles:         m.profiles,
		Users:            m.users,
	}
	writer := &storage.Writer{
		Transactions:     m.transactions,
		BudgetCategories: m.categories,
		SavingsGoals:     m.goals,
		Profiles:         m.profiles,
		Users:            m.users,
	}
	return store, writer, m
}

// fakeProcessor runs actions inline against writer.
type fakeProcessor struct {
	writer  *storage.Writer
	mu      sync.Mutex
	actions []actions.IAction
}

func (p *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.mu.Lock()
	p.actions = append(p.actions, action)
	p.mu.Unlock()
	return action.Perform(ctx, p.writer)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []notify.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]notify.EventType, len(p.events))
	for i, event := range p.events {
		types[i] = event.Type
	}
	return types
}

type fakeTokens struct {
	issued  []uuid.UUID
	revoked []auth.Identity
}

func (f *fakeTokens) Issue(userID uuid.UUID, _ string) (auth.Token, error) {
	f.issued = append(f.issued, userID)
	return auth.Token{Value: "token-" + userID.String(), ID: "jti"}, nil
}

func (f *fakeTokens) Revoke(identity auth.Identity) {
	f.revoked = append(f.revoked, identity)
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
