package service

import (
	"fmt"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// AccountType enumerates the supported account types.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit-card"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeExchange   AccountType = "exchange"
	AccountTypeWallet     AccountType = "wallet"
	AccountTypeStaking    AccountType = "staking"
	AccountTypeOther      AccountType = "other"
)

// AccountTypes lists every valid account type, for API schema enums.
var AccountTypes = []AccountType{
	AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard,
	AccountTypeInvestment, AccountTypeExchange, AccountTypeWallet,
	AccountTypeStaking, AccountTypeOther,
}

// ParseAccountType validates a type string.
func ParseAccountType(s string) (AccountType, error) {
	for _, t := range AccountTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", s)
}

// Account represents an account in the service layer. Optional fields are
// explicit null values, never missing.
type Account struct {
	ID          uuid.UUID
	Name        string
	Type        AccountType
	Currency    string
	Balance     decimal.Decimal
	Provider    null.Val[string]
	CategoryTag null.Val[string]
	CreatedAt   Timestamp
	UpdatedAt   Timestamp
}

// AccountCreate is the input for creating an account: everything but the
// identifier and timestamps.
type AccountCreate struct {
	Name        string
	Type        AccountType
	Currency    string
	Balance     decimal.Decimal
	Provider    null.Val[string]
	CategoryTag null.Val[string]
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:          row.ID,
		Name:        row.Name,
		Type:        AccountType(row.Type),
		Currency:    row.Currency,
		Balance:     row.Balance,
		Provider:    row.Provider,
		CategoryTag: row.CategoryTag,
		CreatedAt:   Confirmed(row.CreatedAt),
		UpdatedAt:   Confirmed(row.UpdatedAt),
	}
}
