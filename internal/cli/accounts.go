package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finkeeper/internal/common"
	"github.com/dmitrijs2005/finkeeper/internal/currency"
	"github.com/dmitrijs2005/finkeeper/internal/ledger"
	"github.com/dmitrijs2005/finkeeper/internal/vault"
)

func (a *App) listAccounts() {
	if !a.requireOpen() {
		return
	}

	v := a.svc.Vault()
	for _, acc := range v.Accounts {
		marker := " "
		if acc.ID == a.svc.CurrentAccount() {
			marker = "*"
		}
		balance := currency.Format(acc.Currency, v.Balance(acc.ID))
		fmt.Fprintf(a.out, "%s %s\t%-10s %s\t%s", marker, acc.ID, acc.Type, acc.Name, balance)
		if acc.Type == vault.AccountTypeCredit {
			fmt.Fprintf(a.out, "\tavailable %s", currency.Format(acc.Currency, v.AvailableCredit(acc.ID)))
		}
		fmt.Fprintln(a.out)
	}
}

func (a *App) createAccount(ctx context.Context) {
	if !a.requireOpen() {
		return
	}

	name, err := GetSimpleText(a.reader, "Account name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	accType, err := GetSimpleText(a.reader, "Type (checking|cash|credit|crypto)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	code, err := GetSimpleText(a.reader, "Currency code (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	var terms ledger.CreditTerms
	if vault.AccountType(accType) == vault.AccountTypeCredit {
		limit, _ := GetSimpleText(a.reader, "Credit limit", a.out)
		due, _ := GetSimpleText(a.reader, "Payment due day", a.out)
		closeDay, _ := GetSimpleText(a.reader, "Statement close day", a.out)
		terms.Limit, terms.PaymentDueDay, terms.StatementCloseDay = vault.ParseCreditTerms(limit, due, closeDay)
	}

	acc, err := a.svc.CreateAccount(ctx, name, code, vault.AccountType(accType), terms)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created account %s (%s).\n", acc.Name, acc.ID)
}

func (a *App) deleteAccount(ctx context.Context, args []string) {
	if !a.requireOpen() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delacc <account-id>")
		return
	}

	err := a.svc.DeleteAccount(ctx, args[0])
	if errors.Is(err, common.ErrLastAccount) {
		fmt.Fprintln(a.out, "The last account cannot be deleted.")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Account and its transactions deleted.")
}

func (a *App) useAccount(args []string) {
	if !a.requireOpen() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: use <account-id>")
		return
	}
	if err := a.svc.SelectAccount(args[0]); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
