package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finkeeper/internal/common"
)

const maxUnlockAttempts = 3

func (a *App) newVault(ctx context.Context) {
	if err := a.svc.NewVault(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.opened = true
	fmt.Fprintln(a.out, "Created a new vault with one default account.")
}

func (a *App) openVault(ctx context.Context) {
	locked, hint, err := a.svc.Open(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	if locked {
		if !a.unlock(ctx, hint) {
			return
		}
	}

	a.opened = true
	v := a.svc.Vault()
	fmt.Fprintf(a.out, "Vault opened: %d account(s), %d transaction(s).\n",
		len(v.Accounts), len(v.Transactions))
}

func (a *App) unlock(ctx context.Context, hint string) bool {
	for attempt := 1; attempt <= maxUnlockAttempts; attempt++ {
		password, err := GetPassword(a.out, "Enter vault password: ")
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return false
		}

		err = a.svc.Unlock(ctx, password)
		common.WipeByteArray(password)
		if err == nil {
			return true
		}
		if !errors.Is(err, common.ErrDecryptionFailed) {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return false
		}

		fmt.Fprintln(a.out, "Incorrect password or corrupted data.")
		if hint != "" {
			fmt.Fprintf(a.out, "Hint: %s\n", hint)
		}
	}
	return false
}

func (a *App) save(ctx context.Context) {
	if !a.requireOpen() {
		return
	}
	if err := a.svc.Save(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Saved.")
}

func (a *App) protect(ctx context.Context) {
	if !a.requireOpen() {
		return
	}

	password, err := GetPassword(a.out, "New vault password: ")
	if err != nil || len(password) == 0 {
		fmt.Fprintln(a.out, "Password must not be empty.")
		return
	}
	defer common.WipeByteArray(password)

	hint, err := GetSimpleText(a.reader, "Password hint (shown after failed attempts, stored in cleartext)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.svc.SetEncryption(password, hint)
	if err := a.svc.Save(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Vault is now encrypted.")
}

func (a *App) unprotect(ctx context.Context) {
	if !a.requireOpen() {
		return
	}
	a.svc.ClearEncryption()
	if err := a.svc.Save(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Vault is now stored in plaintext.")
}

func (a *App) undo(ctx context.Context) {
	if !a.requireOpen() {
		return
	}
	if !a.svc.CanUndo() {
		fmt.Fprintln(a.out, "Nothing to undo.")
		return
	}
	if err := a.svc.Undo(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) redo(ctx context.Context) {
	if !a.requireOpen() {
		return
	}
	if !a.svc.CanRedo() {
		fmt.Fprintln(a.out, "Nothing to redo.")
		return
	}
	if err := a.svc.Redo(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func (a *App) listFiles(ctx context.Context) {
	if a.lister == nil {
		fmt.Fprintln(a.out, "File listing is only available with the s3 backend.")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	files, err := a.lister.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%s\t%s\n", f.ModifiedTime.Format("2006-01-02 15:04"), f.Name)
	}
}
