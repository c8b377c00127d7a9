// Package store persists JSON values through the secure item table,
// encrypting them when a PIN has been configured. Reads are best-effort:
// missing or undecryptable data falls back to the caller's default instead
// of failing the operation.
package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/carson-networks/sms-ledger/internal/storage/sqlconfig"
)

const (
	pinHashKey    = "pin_hash"
	keySalt       = "salt_v1"
	keyIterations = 1000
)

// SecureStore is an encrypted key-value store over the items table. Values
// are whole-value replaced on every save; there are no partial updates.
type SecureStore struct {
	items sqlconfig.IItemsTable
}

func NewSecureStore(items sqlconfig.IItemsTable) *SecureStore {
	return &SecureStore{items: items}
}

// SetPin stores the hash of the user's PIN. Subsequent saves encrypt with a
// key derived from it; values saved before the PIN was set stay readable only
// until overwritten.
func (s *SecureStore) SetPin(ctx context.Context, pin string) error {
	hash := sha256.Sum256([]byte(pin))
	return s.items.Put(ctx, pinHashKey, []byte(hex.EncodeToString(hash[:])))
}

// HasPin reports whether a PIN has been configured.
func (s *SecureStore) HasPin(ctx context.Context) (bool, error) {
	item, err := s.items.Get(ctx, pinHashKey)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// Save marshals value to JSON, encrypts it when a PIN is set, and replaces
// whatever was stored under key.
func (s *SecureStore) Save(ctx context.Context, key string, value interface{}) error {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %q: %w", key, err)
	}

	aesKey, err := s.encryptionKey(ctx)
	if err != nil {
		return err
	}

	payload := plaintext
	if aesKey != nil {
		payload, err = seal(aesKey, plaintext)
		if err != nil {
			return fmt.Errorf("store: encrypt %q: %w", key, err)
		}
	}

	return s.items.Put(ctx, key, payload)
}

// Load reads the value stored under key into dest. When the key is missing,
// or the stored bytes fail to decrypt or parse, dest is left untouched so the
// caller's pre-populated fallback survives. Storage read failures propagate.
func (s *SecureStore) Load(ctx context.Context, key string, dest interface{}) error {
	item, err := s.items.Get(ctx, key)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	aesKey, err := s.encryptionKey(ctx)
	if err != nil {
		return err
	}

	payload := item.Value
	if aesKey != nil {
		payload, err = open(aesKey, item.Value)
		if err != nil {
			return nil
		}
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// Malformed stored data. Restore is best-effort.
		return nil
	}
	return nil
}

// encryptionKey derives the AES key from the stored PIN hash, or returns nil
// when no PIN is configured.
func (s *SecureStore) encryptionKey(ctx context.Context) ([]byte, error) {
	item, err := s.items.Get(ctx, pinHashKey)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	material := item.Value
	if len(material) > 32 {
		material = material[:32]
	}
	return pbkdf2.Key(material, []byte(keySalt), keyIterations, 32, sha256.New), nil
}

func seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(key, payload []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(payload) < gcm.NonceSize() {
		return nil, fmt.Errorf("payload shorter than nonce")
	}

	return gcm.Open(nil, payload[:gcm.NonceSize()], payload[gcm.NonceSize():], nil)
}
