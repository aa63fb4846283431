// Package cryptox implements the password-based envelope protecting a vault
// at rest: PBKDF2-SHA256 key derivation and AES-GCM encryption of the
// JSON-serialized document.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/dmitrijs2005/finkeeper/internal/common"
	"github.com/dmitrijs2005/finkeeper/internal/vault"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize = 16
	ivSize   = 12
	keySize  = 32

	// KDFIterations is deliberately expensive; callers should not run
	// derivation on a latency-sensitive path.
	KDFIterations = 120_000
)

// Envelope is the encrypted-at-rest wrapper around a serialized vault.
// The hint is stored in cleartext so it can be shown after a failed unlock
// without decrypting anything.
type Envelope struct {
	Encrypted bool   `json:"encrypted"`
	Hint      string `json:"hint"`
	Salt      string `json:"salt"`
	IV        string `json:"iv"`
	Data      string `json:"data"`
}

// DeriveKey stretches a password into a 256-bit AES key.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, KDFIterations, keySize, sha256.New)
}

// Encrypt seals v under a key derived from password. Salt and nonce are
// freshly random on every call, never reused across saves.
func Encrypt(v *vault.Vault, password []byte, hint string) (*Envelope, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	salt := common.GenerateRandByteArray(saltSize)
	iv := common.GenerateRandByteArray(ivSize)

	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ciphertext := aesgcm.Seal(nil, iv, plaintext, nil)

	return &Envelope{
		Encrypted: true,
		Hint:      hint,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		IV:        base64.StdEncoding.EncodeToString(iv),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt re-derives the key from the stored salt and opens the ciphertext.
// Every failure mode (wrong password, corrupted ciphertext, mangled base64)
// collapses into common.ErrDecryptionFailed: distinguishing them would leak
// an oracle.
func Decrypt(env *Envelope, password []byte) (*vault.Vault, error) {
	plaintext, err := DecryptRaw(env, password)
	if err != nil {
		return nil, err
	}
	var v vault.Vault
	if err := json.Unmarshal(plaintext, &v); err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return &v, nil
}

// DecryptRaw opens the envelope and returns the plaintext document without
// interpreting it, so callers can run it through migration like any other
// loaded document.
func DecryptRaw(env *Envelope, password []byte) (json.RawMessage, error) {
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}

	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}

	plaintext, err := aesgcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
