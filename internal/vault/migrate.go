package vault

import (
	"bytes"
	"encoding/json"
)

// Migrate converts a persisted document of unknown shape into a current
// vault. It never fails: anything it cannot interpret degrades to a fresh
// empty vault ("never fail to open" policy). The second return value reports
// whether non-empty input was discarded, so callers can log the data loss.
//
// Recognized shapes:
//   - a version-2 object: returned as-is (idempotence);
//   - a legacy bare array of transactions (version 1): one default account
//     is synthesized and every record is stamped with its id;
//   - null / empty / anything else: a fresh empty vault.
func Migrate(raw json.RawMessage, defaultCurrency string) (*Vault, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return New(defaultCurrency), false
	}

	switch trimmed[0] {
	case '[':
		return migrateLegacyArray(trimmed, defaultCurrency)
	case '{':
		return migrateObject(trimmed, defaultCurrency)
	default:
		return New(defaultCurrency), true
	}
}

func migrateLegacyArray(raw []byte, defaultCurrency string) (*Vault, bool) {
	var records []Transaction
	if err := json.Unmarshal(raw, &records); err != nil {
		return New(defaultCurrency), true
	}

	acc := newDefaultAccount(defaultCurrency)
	for i := range records {
		records[i].AccountID = acc.ID
	}
	if records == nil {
		records = []Transaction{}
	}

	return &Vault{
		Version:      CurrentVersion,
		Accounts:     []Account{acc},
		Transactions: records,
	}, false
}

func migrateObject(raw []byte, defaultCurrency string) (*Vault, bool) {
	var v Vault
	if err := json.Unmarshal(raw, &v); err != nil || v.Version != CurrentVersion {
		return New(defaultCurrency), true
	}

	// Normalize without changing meaning: nil slices become empty and a
	// vault is never left without at least one account.
	if v.Accounts == nil {
		v.Accounts = []Account{}
	}
	if v.Transactions == nil {
		v.Transactions = []Transaction{}
	}
	if len(v.Accounts) == 0 {
		v.Accounts = append(v.Accounts, newDefaultAccount(defaultCurrency))
	}
	return &v, false
}
