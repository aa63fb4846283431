// Package ledger implements the mutation rules for an open vault session.
// Every mutation funnels through the same path: validate, snapshot the
// pre-mutation document onto the history stack, apply, autosave. A failed
// save leaves the in-memory vault and history untouched so the user can
// retry without losing edits.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/finkeeper/internal/common"
	"github.com/dmitrijs2005/finkeeper/internal/cryptox"
	"github.com/dmitrijs2005/finkeeper/internal/history"
	"github.com/dmitrijs2005/finkeeper/internal/logging"
	"github.com/dmitrijs2005/finkeeper/internal/storage"
	"github.com/dmitrijs2005/finkeeper/internal/vault"
	"github.com/google/uuid"
)

// AdjustmentLabel prefixes every balance-adjustment transaction.
const AdjustmentLabel = "Balance Adjustment"

// CreditTerms carries the credit-card fields of a new account.
type CreditTerms struct {
	Limit             float64
	PaymentDueDay     int
	StatementCloseDay int
}

// Options configures a session service.
type Options struct {
	// DefaultCurrency is used for synthesized and freshly created vaults.
	DefaultCurrency string
	// HistoryDepth bounds the undo stack; 0 means the default.
	HistoryDepth int
	// Identity, when set, is stamped into Transaction.CreatedBy for
	// shared vaults.
	Identity string
}

// Service owns exactly one vault session: the live document, its history
// stack, its storage gateway and its encryption state. It is single-writer
// by construction; callers must not share one Service across goroutines.
type Service interface {
	// Open loads the stored document. When it is an encrypted envelope the
	// session stays locked and the cleartext hint is returned; call Unlock
	// next. Otherwise the document is migrated and the session is ready.
	Open(ctx context.Context) (locked bool, hint string, err error)
	// Unlock decrypts a locked document and completes opening.
	Unlock(ctx context.Context, password []byte) error
	// NewVault starts a fresh vault with one default account and saves it.
	NewVault(ctx context.Context) error
	// Save persists the current document through the gateway, applying the
	// encryption envelope when one is configured.
	Save(ctx context.Context) error
	// Close clears history and wipes key material. The vault is not saved.
	Close()

	Vault() *vault.Vault
	CurrentAccount() string
	SelectAccount(id string) error

	AddTransaction(ctx context.Context, accountID, desc string, amount float64, date, category string) (*vault.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	CreateAccount(ctx context.Context, name, currency string, accType vault.AccountType, credit CreditTerms) (*vault.Account, error)
	DeleteAccount(ctx context.Context, id string) error
	ApplyBalanceAdjustment(ctx context.Context, accountID string, newBalance float64, reason string) (*vault.Transaction, error)

	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	CanUndo() bool
	CanRedo() bool

	// SetEncryption turns on the password envelope for subsequent saves.
	// The password is copied; the caller may wipe its own buffer.
	SetEncryption(password []byte, hint string)
	// ClearEncryption switches back to plaintext saves and wipes the held
	// password.
	ClearEncryption()
	Encrypted() bool
}

type ledgerService struct {
	gw   storage.Gateway
	log  logging.Logger
	opts Options

	v       *vault.Vault
	hist    *history.Stack
	current string

	encrypted bool
	password  []byte
	hint      string

	// pending holds the envelope of a document read but not yet unlocked.
	pending *cryptox.Envelope
}

func NewService(gw storage.Gateway, log logging.Logger, opts Options) Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ledgerService{
		gw:   gw,
		log:  log,
		opts: opts,
		hist: history.New(opts.HistoryDepth),
	}
}

func (s *ledgerService) Open(ctx context.Context) (bool, string, error) {
	data, err := s.gw.Read(ctx)
	if err != nil {
		return false, "", fmt.Errorf("opening vault: %w", err)
	}

	doc := cryptox.ParseStored(data)
	if doc.IsEncrypted() {
		s.pending = doc.Envelope
		return true, doc.Envelope.Hint, nil
	}

	s.adopt(ctx, doc.Raw)
	return false, "", nil
}

func (s *ledgerService) Unlock(ctx context.Context, password []byte) error {
	if s.pending == nil {
		return fmt.Errorf("unlock: %w", common.ErrNoVault)
	}

	raw, err := cryptox.DecryptRaw(s.pending, password)
	if err != nil {
		return err
	}

	env := s.pending
	s.pending = nil
	s.adopt(ctx, raw)

	// keep saving under the same password and hint
	s.encrypted = true
	s.password = append([]byte(nil), password...)
	s.hint = env.Hint
	return nil
}

// adopt migrates raw bytes into the live document and resets the session.
func (s *ledgerService) adopt(ctx context.Context, raw json.RawMessage) {
	v, degraded := vault.Migrate(raw, s.opts.DefaultCurrency)
	if degraded {
		// deliberate never-fail-to-open policy; the previous content is
		// discarded, which is why it is logged loudly
		s.log.Warn(ctx, "stored document not recognized, starting with a fresh vault")
	}
	s.v = v
	s.hist.Clear()
	s.current = v.Accounts[0].ID
}

func (s *ledgerService) NewVault(ctx context.Context) error {
	s.v = vault.New(s.opts.DefaultCurrency)
	s.hist.Clear()
	s.current = s.v.Accounts[0].ID
	s.pending = nil
	return s.Save(ctx)
}

func (s *ledgerService) Save(ctx context.Context) error {
	if s.v == nil {
		return common.ErrNoVault
	}

	var payload any = s.v
	if s.encrypted {
		env, err := cryptox.Encrypt(s.v, s.password, s.hint)
		if err != nil {
			return fmt.Errorf("encrypting vault: %w", err)
		}
		payload = env
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializing vault: %w", err)
	}
	if err := s.gw.Write(ctx, data); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}

	s.log.Debug(ctx, "vault saved",
		"accounts", len(s.v.Accounts),
		"transactions", len(s.v.Transactions),
		"encrypted", s.encrypted)
	return nil
}

func (s *ledgerService) Close() {
	s.hist.Clear()
	common.WipeByteArray(s.password)
	s.password = nil
	s.v = nil
	s.pending = nil
	s.current = ""
	s.encrypted = false
	s.hint = ""
}

func (s *ledgerService) Vault() *vault.Vault    { return s.v }
func (s *ledgerService) CurrentAccount() string { return s.current }

func (s *ledgerService) SelectAccount(id string) error {
	if s.v == nil {
		return common.ErrNoVault
	}
	if s.v.Account(id) == nil {
		return fmt.Errorf("%w: unknown account %q", common.ErrValidation, id)
	}
	s.current = id
	return nil
}

func (s *ledgerService) AddTransaction(ctx context.Context, accountID, desc string, amount float64, date, category string) (*vault.Transaction, error) {
	if s.v == nil {
		return nil, common.ErrNoVault
	}

	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, fmt.Errorf("%w: description must not be empty", common.ErrValidation)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount == 0 {
		return nil, fmt.Errorf("%w: amount must be a finite non-zero number", common.ErrValidation)
	}
	if s.v.Account(accountID) == nil {
		return nil, fmt.Errorf("%w: unknown account %q", common.ErrValidation, accountID)
	}

	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	tx := vault.Transaction{
		ID:        vault.NewTransactionID(),
		AccountID: accountID,
		Desc:      desc,
		Amount:    amount,
		Date:      date,
		Category:  category,
	}
	if s.opts.Identity != "" {
		by := s.opts.Identity
		tx.CreatedBy = &by
	}

	s.hist.Push(s.v)
	s.v.Transactions = append(s.v.Transactions, tx)

	if err := s.Save(ctx); err != nil {
		return nil, err
	}
	return &s.v.Transactions[len(s.v.Transactions)-1], nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, id int64) error {
	if s.v == nil {
		return common.ErrNoVault
	}

	idx := -1
	for i := range s.v.Transactions {
		if s.v.Transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		// idempotent deletion: absent id is not an error and leaves no
		// history entry behind
		return nil
	}

	s.hist.Push(s.v)
	s.v.Transactions = append(s.v.Transactions[:idx], s.v.Transactions[idx+1:]...)
	return s.Save(ctx)
}

func (s *ledgerService) CreateAccount(ctx context.Context, name, currency string, accType vault.AccountType, credit CreditTerms) (*vault.Account, error) {
	if s.v == nil {
		return nil, common.ErrNoVault
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name must not be empty", common.ErrValidation)
	}
	if currency == "" {
		currency = s.opts.DefaultCurrency
	}

	acc := vault.Account{
		ID:        uuid.NewString(),
		Type:      accType,
		Name:      name,
		Currency:  currency,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if accType == vault.AccountTypeCredit {
		acc.CreditLimit = credit.Limit
		acc.PaymentDueDay = credit.PaymentDueDay
		acc.StatementCloseDay = credit.StatementCloseDay
	}

	s.hist.Push(s.v)
	s.v.Accounts = append(s.v.Accounts, acc)

	if err := s.Save(ctx); err != nil {
		return nil, err
	}
	return &s.v.Accounts[len(s.v.Accounts)-1], nil
}

func (s *ledgerService) DeleteAccount(ctx context.Context, id string) error {
	if s.v == nil {
		return common.ErrNoVault
	}
	if s.v.Account(id) == nil {
		return nil
	}
	if len(s.v.Accounts) == 1 {
		return common.ErrLastAccount
	}

	s.hist.Push(s.v)

	accounts := s.v.Accounts[:0]
	for _, acc := range s.v.Accounts {
		if acc.ID != id {
			accounts = append(accounts, acc)
		}
	}
	s.v.Accounts = accounts

	// cascade: an account owns its transactions
	txs := s.v.Transactions[:0]
	for _, tx := range s.v.Transactions {
		if tx.AccountID != id {
			txs = append(txs, tx)
		}
	}
	s.v.Transactions = txs

	if s.current == id {
		s.current = s.v.Accounts[0].ID
	}
	return s.Save(ctx)
}

func (s *ledgerService) ApplyBalanceAdjustment(ctx context.Context, accountID string, newBalance float64, reason string) (*vault.Transaction, error) {
	if s.v == nil {
		return nil, common.ErrNoVault
	}
	if s.v.Account(accountID) == nil {
		return nil, fmt.Errorf("%w: unknown account %q", common.ErrValidation, accountID)
	}
	if math.IsNaN(newBalance) || math.IsInf(newBalance, 0) {
		return nil, fmt.Errorf("%w: balance must be a finite number", common.ErrValidation)
	}

	delta := newBalance - s.v.Balance(accountID)
	if delta == 0 {
		// nothing to reconcile; avoid zero-amount noise in the register
		return nil, nil
	}

	desc := AdjustmentLabel
	if reason = strings.TrimSpace(reason); reason != "" {
		desc = fmt.Sprintf("%s: %s", AdjustmentLabel, reason)
	}

	tx := vault.Transaction{
		ID:        vault.NewTransactionID(),
		AccountID: accountID,
		Desc:      desc,
		Amount:    delta,
		Date:      time.Now().UTC().Format(time.RFC3339),
	}
	if s.opts.Identity != "" {
		by := s.opts.Identity
		tx.CreatedBy = &by
	}

	s.hist.Push(s.v)
	s.v.Transactions = append(s.v.Transactions, tx)

	if err := s.Save(ctx); err != nil {
		return nil, err
	}
	return &s.v.Transactions[len(s.v.Transactions)-1], nil
}

func (s *ledgerService) Undo(ctx context.Context) error {
	if s.v == nil {
		return common.ErrNoVault
	}
	prev := s.hist.Undo(s.v)
	if prev == nil {
		return nil
	}
	s.v = prev
	s.ensureCurrent()
	return s.Save(ctx)
}

func (s *ledgerService) Redo(ctx context.Context) error {
	if s.v == nil {
		return common.ErrNoVault
	}
	next := s.hist.Redo(s.v)
	if next == nil {
		return nil
	}
	s.v = next
	s.ensureCurrent()
	return s.Save(ctx)
}

// ensureCurrent repairs the selection after a restored snapshot no longer
// contains the selected account.
func (s *ledgerService) ensureCurrent() {
	if s.v.Account(s.current) == nil {
		s.current = s.v.Accounts[0].ID
	}
}

func (s *ledgerService) CanUndo() bool { return s.hist.CanUndo() }
func (s *ledgerService) CanRedo() bool { return s.hist.CanRedo() }

func (s *ledgerService) SetEncryption(password []byte, hint string) {
	common.WipeByteArray(s.password)
	s.password = append([]byte(nil), password...)
	s.hint = hint
	s.encrypted = true
}

func (s *ledgerService) ClearEncryption() {
	common.WipeByteArray(s.password)
	s.password = nil
	s.hint = ""
	s.encrypted = false
}

func (s *ledgerService) Encrypted() bool { return s.encrypted }
