// Package vault defines the persisted document model: accounts, transactions
// and the rules for migrating and evaluating them.
package vault

import (
	"time"

	"github.com/google/uuid"
)

// CurrentVersion is the schema version written by this build.
// Version 1 was a bare JSON array of transactions without accounts.
const CurrentVersion = 2

// AccountType classifies an account kind.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeCrypto   AccountType = "crypto"
)

// DefaultAccountName is used for the account synthesized during migration
// and for a freshly created vault.
const DefaultAccountName = "Main Account"

// Account is a named money container. Credit-specific fields are only
// meaningful when Type is AccountTypeCredit.
type Account struct {
	ID        string      `json:"id"`
	Type      AccountType `json:"type"`
	Name      string      `json:"name"`
	Currency  string      `json:"currency"`
	CreatedAt string      `json:"createdAt"`

	CreditLimit       float64 `json:"creditLimit,omitempty"`
	PaymentDueDay     int     `json:"paymentDueDay,omitempty"`
	StatementCloseDay int     `json:"statementCloseDay,omitempty"`
}

// Transaction is one signed monetary movement against an account.
// Positive amounts are inflows, negative amounts are outflows. Transactions
// are never edited in place; corrections are new adjustment transactions.
type Transaction struct {
	ID        int64   `json:"id"`
	AccountID string  `json:"accountId"`
	Desc      string  `json:"desc"`
	Amount    float64 `json:"amt"`
	Date      string  `json:"date"`
	Category  string  `json:"category,omitempty"`
	CreatedBy *string `json:"createdBy,omitempty"`
}

// Vault is the root persisted document. Account order is display order.
type Vault struct {
	Version      int           `json:"version"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
}

// New returns a fresh empty vault with one default account, as created by
// the "new vault" flow. An empty defaultCurrency falls back to USD.
func New(defaultCurrency string) *Vault {
	return &Vault{
		Version:      CurrentVersion,
		Accounts:     []Account{newDefaultAccount(defaultCurrency)},
		Transactions: []Transaction{},
	}
}

func newDefaultAccount(currency string) Account {
	if currency == "" {
		currency = "USD"
	}
	return Account{
		ID:        uuid.NewString(),
		Type:      AccountTypeChecking,
		Name:      DefaultAccountName,
		Currency:  currency,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Account returns the account with the given id, or nil if absent.
func (v *Vault) Account(id string) *Account {
	for i := range v.Accounts {
		if v.Accounts[i].ID == id {
			return &v.Accounts[i]
		}
	}
	return nil
}

// Clone returns a deep copy sharing no mutable state with v.
// Undo/redo snapshots rely on this being a full structural copy.
func (v *Vault) Clone() *Vault {
	if v == nil {
		return nil
	}
	c := &Vault{
		Version:      v.Version,
		Accounts:     make([]Account, len(v.Accounts)),
		Transactions: make([]Transaction, len(v.Transactions)),
	}
	copy(c.Accounts, v.Accounts)
	for i, tx := range v.Transactions {
		if tx.CreatedBy != nil {
			by := *tx.CreatedBy
			tx.CreatedBy = &by
		}
		c.Transactions[i] = tx
	}
	return c
}
