package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
)

// ActionProcessor runs a write action in its own storage transaction.
// *operator.OperatorDelegator satisfies it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *BudgetCategoryService
	Goal        *SavingsGoalService
	Profile     *ProfileService
	Dashboard   *DashboardService
	Auth        *AuthService
}

// NewService wires the services. Reads go straight to store; every write is
// handed to processor.
func NewService(store *storage.Storage, processor ActionProcessor, publisher notify.Publisher, tokens TokenManager, defaultCurrency ledger.Currency) *Service {
	goals := NewSavingsGoalService(store, processor, publisher)
	return &Service{
		Transaction: NewTransactionService(store, processor, publisher, goals, defaultCurrency),
		Category:    NewBudgetCategoryService(store, processor),
		Goal:        goals,
		Profile:     NewProfileService(store, processor),
		Dashboard:   NewDashboardService(store),
		Auth:        NewAuthService(store, processor, tokens),
	}
}

// publish delivers event and only logs a failure.
func publish(ctx context.Context, publisher notify.Publisher, event notify.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("eventType", string(event.Type)).Warn("Service.publish")
	}
}
