package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/finkeeper/internal/currency"
)

// addTransaction reads one entry form. The sign argument (+1 income,
// -1 expense) is applied here; the user always types a positive amount.
func (a *App) addTransaction(ctx context.Context, sign float64) {
	if !a.requireOpen() {
		return
	}

	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	tx, err := a.svc.AddTransaction(ctx, a.svc.CurrentAccount(), desc, sign*amount, "", category)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	acc := a.svc.Vault().Account(tx.AccountID)
	fmt.Fprintf(a.out, "Recorded %s. Balance: %s\n",
		currency.Format(acc.Currency, tx.Amount),
		currency.Format(acc.Currency, a.svc.Vault().Balance(acc.ID)))
}

func (a *App) listTransactions() {
	if !a.requireOpen() {
		return
	}

	v := a.svc.Vault()
	accID := a.svc.CurrentAccount()
	acc := v.Account(accID)

	for _, tx := range v.Transactions {
		if tx.AccountID != accID {
			continue
		}
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%s", tx.ID, tx.Date, tx.Desc, currency.Format(acc.Currency, tx.Amount))
		if tx.Category != "" {
			fmt.Fprintf(a.out, "\t[%s]", tx.Category)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "Balance: %s\n", currency.Format(acc.Currency, v.Balance(accID)))
}

func (a *App) deleteTransaction(ctx context.Context, args []string) {
	if !a.requireOpen() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: del <transaction-id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Transaction id must be a number.")
		return
	}
	if err := a.svc.DeleteTransaction(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) setBalance(ctx context.Context) {
	if !a.requireOpen() {
		return
	}

	text, err := GetSimpleText(a.reader, "New balance", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	newBalance, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Balance must be a number.")
		return
	}
	reason, err := GetSimpleText(a.reader, "Reason (optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	tx, err := a.svc.ApplyBalanceAdjustment(ctx, a.svc.CurrentAccount(), newBalance, reason)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if tx == nil {
		fmt.Fprintln(a.out, "Balance already matches; nothing recorded.")
		return
	}

	acc := a.svc.Vault().Account(tx.AccountID)
	fmt.Fprintf(a.out, "Adjustment of %s recorded.\n", currency.Format(acc.Currency, tx.Amount))
}
