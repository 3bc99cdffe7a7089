package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

type ReplaceTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

type ReplaceTransactionOutput struct {
	Body SavedTransactionBody
}

type transactionReplacer interface {
	Replace(ctx context.Context, id uuid.UUID, tx ledger.Transaction) (service.SavedTransaction, error)
}

// ReplaceTransactionHandler handles PUT /v1/transaction/{id}.
type ReplaceTransactionHandler struct {
	TransactionService transactionReplacer
}

func NewReplaceTransactionHandler(svc transactionReplacer) *ReplaceTransactionHandler {
	return &ReplaceTransactionHandler{TransactionService: svc}
}

func (h *ReplaceTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replace-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Replace transaction",
		Description: "Overwrites every field of a transaction. The new version is applied to savings goals; the old one is not reversed.",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ReplaceTransactionHandler) handle(ctx context.Context, input *ReplaceTransactionInput) (*ReplaceTransactionOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := parseTransactionBody(userID, input.Body)
	if err != nil {
		return nil, err
	}

	saved, err := h.TransactionService.Replace(ctx, id, tx)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to replace transaction")
	}
	return &ReplaceTransactionOutput{Body: toSavedTransactionBody(saved)}, nil
}
