package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/finkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the vault file (file backend)
//	-cur string default currency code for new vaults
//	-b string   persistence backend: file or s3
//	-u string   identity recorded in createdBy on new transactions
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-cur", "-b", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.VaultPath, "f", cfg.VaultPath, "path to the vault file")
	fs.StringVar(&cfg.DefaultCurrency, "cur", cfg.DefaultCurrency, "default currency code")
	backend := fs.String("b", string(cfg.Backend), "persistence backend (file|s3)")
	fs.StringVar(&cfg.Identity, "u", cfg.Identity, "identity recorded on new transactions")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Backend = Backend(*backend)
}
