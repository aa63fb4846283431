// Package cli implements the interactive finkeeper shell: a small REPL that
// drives one vault session through the ledger service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/finkeeper/internal/config"
	"github.com/dmitrijs2005/finkeeper/internal/ledger"
	"github.com/dmitrijs2005/finkeeper/internal/logging"
	"github.com/dmitrijs2005/finkeeper/internal/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	svc    ledger.Service
	lister storage.Lister
	reader *bufio.Reader
	out    io.Writer

	opened bool
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	gw, lister, err := buildGateway(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := ledger.NewService(gw, logger, ledger.Options{
		DefaultCurrency: cfg.DefaultCurrency,
		HistoryDepth:    cfg.HistoryDepth,
		Identity:        cfg.Identity,
	})

	return &App{
		config: cfg,
		logger: logger,
		svc:    svc,
		lister: lister,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func buildGateway(ctx context.Context, cfg *config.Config) (storage.Gateway, storage.Lister, error) {
	switch cfg.Backend {
	case config.BackendS3:
		g, err := storage.NewS3Gateway(ctx, storage.S3Config{
			BaseEndpoint: cfg.S3Endpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKeyID:  cfg.S3AccessKeyID,
			SecretKey:    cfg.S3SecretKey,
			Prefix:       cfg.S3Prefix,
			Key:          cfg.S3Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	case config.BackendFile, "":
		return storage.NewFileGateway(cfg.VaultPath), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.svc.Close()
	a.Root(ctx)
}
