package vault

import "math"

// Balance returns the sum of all transaction amounts belonging to the given
// account. Pure; returns 0 for an unknown account or one with no transactions.
func (v *Vault) Balance(accountID string) float64 {
	var sum float64
	for i := range v.Transactions {
		if v.Transactions[i].AccountID == accountID {
			sum += v.Transactions[i].Amount
		}
	}
	return sum
}

// AvailableCredit returns creditLimit minus the absolute balance for a
// credit account, and 0 for every other account type.
func (v *Vault) AvailableCredit(accountID string) float64 {
	acc := v.Account(accountID)
	if acc == nil || acc.Type != AccountTypeCredit {
		return 0
	}
	return acc.CreditLimit - math.Abs(v.Balance(accountID))
}
