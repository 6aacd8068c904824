package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	AccountID   string `json:"accountId" doc:"Owning account UUID"`
	Date        string `json:"date" doc:"Transaction date (RFC 3339, midnight UTC)"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	Category    string `json:"category,omitempty" doc:"Category identifier"`
	Amount      string `json:"amount" doc:"Signed decimal amount; positive is an inflow"`
	Currency    string `json:"currency" doc:"ISO 4217 code or crypto ticker"`
	CreatedAt   string `json:"createdAt" doc:"RFC 3339 creation time"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC 3339 last update time"`
	Pending     bool   `json:"pending,omitempty" doc:"True while timestamps are local and not yet confirmed by the store"`
}

// TransactionBody is the request body for creating or updating a
// transaction.
type TransactionBody struct {
	AccountID   string `json:"accountId" format:"uuid" doc:"Owning account UUID"`
	Date        string `json:"date,omitempty" format:"date-time" doc:"Transaction date, defaults to today"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
	Category    string `json:"category,omitempty" doc:"Category identifier"`
	Amount      string `json:"amount" minLength:"1" doc:"Signed decimal amount; positive is an inflow"`
	Currency    string `json:"currency" minLength:"1" doc:"ISO 4217 code or crypto ticker"`
}

func transactionToAPI(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		AccountID:   tx.AccountID.String(),
		Date:        tx.Date.Format(time.RFC3339),
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      tx.Amount.String(),
		Currency:    tx.Currency,
		CreatedAt:   tx.CreatedAt.Time.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Time.Format(time.RFC3339),
		Pending:     !tx.CreatedAt.Confirmed || !tx.UpdatedAt.Confirmed,
	}
}

func parseTransactionBody(body TransactionBody) (service.TransactionCreate, error) {
	accountID, err := uuid.FromString(body.AccountID)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionCreate{
		AccountID:   accountID,
		Date:        date,
		Description: body.Description,
		Category:    body.Category,
		Amount:      amount,
		Currency:    body.Currency,
	}, nil
}
