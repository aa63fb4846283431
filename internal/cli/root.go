package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if !a.opened {
		return ""
	}
	s := ""
	if v := a.svc.Vault(); v != nil {
		if acc := v.Account(a.svc.CurrentAccount()); acc != nil {
			s = acc.Name
		}
	}
	if a.svc.Encrypted() {
		s += " \U0001F512"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to finkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "fk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "new":
			a.newVault(ctx)
		case "open":
			a.openVault(ctx)
		case "save":
			a.save(ctx)
		case "accounts":
			a.listAccounts()
		case "addacc":
			a.createAccount(ctx)
		case "delacc":
			a.deleteAccount(ctx, args)
		case "use":
			a.useAccount(args)
		case "income":
			a.addTransaction(ctx, 1)
		case "expense":
			a.addTransaction(ctx, -1)
		case "txs":
			a.listTransactions()
		case "del":
			a.deleteTransaction(ctx, args)
		case "setbalance":
			a.setBalance(ctx)
		case "attach":
			a.attachFiles(args)
		case "undo":
			a.undo(ctx)
		case "redo":
			a.redo(ctx)
		case "protect":
			a.protect(ctx)
		case "unprotect":
			a.unprotect(ctx)
		case "files":
			a.listFiles(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.opened {
		fmt.Fprintln(a.out, "Available commands: accounts, addacc, delacc <id>, use <id>, income, expense, txs, del <id>, setbalance, attach, undo, redo, save, protect, unprotect, files, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: new, open, files, exit")
	}
}

func (a *App) requireOpen() bool {
	if !a.opened {
		fmt.Fprintln(a.out, "No vault is open. Use 'new' or 'open' first.")
		return false
	}
	return true
}
