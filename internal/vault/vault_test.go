package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New("USD")
	require.Equal(t, CurrentVersion, v.Version)
	require.Len(t, v.Accounts, 1)
	require.Equal(t, DefaultAccountName, v.Accounts[0].Name)
	require.Equal(t, AccountTypeChecking, v.Accounts[0].Type)
	require.NotEmpty(t, v.Accounts[0].ID)
	require.Empty(t, v.Transactions)

	// currency fallback
	v2 := New("")
	require.Equal(t, "USD", v2.Accounts[0].Currency)
}

func TestVault_Balance(t *testing.T) {
	v := New("USD")
	acc := v.Accounts[0].ID

	require.Zero(t, v.Balance(acc))

	v.Transactions = append(v.Transactions,
		Transaction{ID: 1, AccountID: acc, Desc: "Paycheck", Amount: 1000},
		Transaction{ID: 2, AccountID: acc, Desc: "Rent", Amount: -500},
		Transaction{ID: 3, AccountID: "other", Desc: "Not mine", Amount: 99},
	)

	require.Equal(t, 500.0, v.Balance(acc))
	require.Zero(t, v.Balance("missing"))
}

func TestVault_AvailableCredit(t *testing.T) {
	v := New("USD")
	checking := v.Accounts[0].ID

	v.Accounts = append(v.Accounts, Account{
		ID: "cc", Type: AccountTypeCredit, Name: "Card", Currency: "USD", CreditLimit: 1000,
	})
	v.Transactions = append(v.Transactions,
		Transaction{ID: 1, AccountID: "cc", Amount: -250},
	)

	require.Equal(t, 750.0, v.AvailableCredit("cc"))
	require.Zero(t, v.AvailableCredit(checking))
	require.Zero(t, v.AvailableCredit("missing"))
}

func TestVault_Clone(t *testing.T) {
	by := "alice"
	v := New("USD")
	v.Transactions = append(v.Transactions, Transaction{
		ID: 1, AccountID: v.Accounts[0].ID, Desc: "x", Amount: 5, CreatedBy: &by,
	})

	c := v.Clone()
	require.Equal(t, v, c)

	// mutations of the clone must not leak back
	c.Accounts[0].Name = "changed"
	*c.Transactions[0].CreatedBy = "mallory"
	c.Transactions = append(c.Transactions, Transaction{ID: 2})

	require.Equal(t, DefaultAccountName, v.Accounts[0].Name)
	require.Equal(t, "alice", *v.Transactions[0].CreatedBy)
	require.Len(t, v.Transactions, 1)
}

func TestNewTransactionID_Monotonic(t *testing.T) {
	prev := NewTransactionID()
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestParseCreditTerms(t *testing.T) {
	tests := []struct {
		name               string
		limit, due, close  string
		wantLimit          float64
		wantDue, wantClose int
	}{
		{name: "all valid", limit: "1500.50", due: "15", close: "10", wantLimit: 1500.50, wantDue: 15, wantClose: 10},
		{name: "all empty", limit: "", due: "", close: "", wantLimit: 0, wantDue: 1, wantClose: 1},
		{name: "garbage", limit: "abc", due: "x", close: "y", wantLimit: 0, wantDue: 1, wantClose: 1},
		{name: "negative limit", limit: "-5", due: "1", close: "1", wantLimit: 0, wantDue: 1, wantClose: 1},
		{name: "out of range day kept", limit: "0", due: "45", close: "0", wantLimit: 0, wantDue: 45, wantClose: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, d, c := ParseCreditTerms(tt.limit, tt.due, tt.close)
			require.Equal(t, tt.wantLimit, l)
			require.Equal(t, tt.wantDue, d)
			require.Equal(t, tt.wantClose, c)
		})
	}
}
