package account

import (
	"net/http"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID          string `json:"id" doc:"Account UUID"`
	Name        string `json:"name" doc:"Account name"`
	Type        string `json:"type" doc:"Account type, e.g. checking, savings, credit-card, investment, exchange, wallet, staking, other"`
	Currency    string `json:"currency" doc:"ISO 4217 code or crypto ticker"`
	Balance     string `json:"balance" doc:"Decimal balance in the account currency"`
	Provider    string `json:"provider,omitempty" doc:"Institution or platform name"`
	CategoryTag string `json:"categoryTag,omitempty" doc:"Free-form grouping tag"`
	CreatedAt   string `json:"createdAt" doc:"RFC 3339 creation time"`
	UpdatedAt   string `json:"updatedAt" doc:"RFC 3339 last update time"`
	Pending     bool   `json:"pending,omitempty" doc:"True while timestamps are local and not yet confirmed by the store"`
}

// AccountBody is the request body for creating or updating an account.
type AccountBody struct {
	Name        string `json:"name" minLength:"1" doc:"Account name"`
	Type        string `json:"type" enum:"checking,savings,credit-card,investment,exchange,wallet,staking,other" doc:"Account type"`
	Currency    string `json:"currency" minLength:"1" doc:"ISO 4217 code or crypto ticker"`
	Balance     string `json:"balance,omitempty" doc:"Decimal balance (e.g. '0' or '1234.56'), defaults to 0"`
	Provider    string `json:"provider,omitempty" doc:"Institution or platform name"`
	CategoryTag string `json:"categoryTag,omitempty" doc:"Free-form grouping tag"`
}

func accountToAPI(acct service.Account) Account {
	return Account{
		ID:          acct.ID.String(),
		Name:        acct.Name,
		Type:        string(acct.Type),
		Currency:    acct.Currency,
		Balance:     acct.Balance.String(),
		Provider:    acct.Provider.GetOr(""),
		CategoryTag: acct.CategoryTag.GetOr(""),
		CreatedAt:   acct.CreatedAt.Time.Format(time.RFC3339),
		UpdatedAt:   acct.UpdatedAt.Time.Format(time.RFC3339),
		Pending:     !acct.CreatedAt.Confirmed || !acct.UpdatedAt.Confirmed,
	}
}

func parseAccountBody(body AccountBody) (service.AccountCreate, error) {
	balanceStr := body.Balance
	if balanceStr == "" {
		balanceStr = "0"
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return service.AccountCreate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	create := service.AccountCreate{
		Name:     body.Name,
		Type:     service.AccountType(body.Type),
		Currency: body.Currency,
		Balance:  balance,
	}
	if body.Provider != "" {
		create.Provider = null.From(body.Provider)
	}
	if body.CategoryTag != "" {
		create.CategoryTag = null.From(body.CategoryTag)
	}
	return create, nil
}
