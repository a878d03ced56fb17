package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/ports"
)

// envelopeID marks the sentinel journey that carries the ciphertext of an
// encrypted set. The envelope keeps encrypted sets type-compatible with
// every underlying store.
const envelopeID = "__encrypted__"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.JourneyStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts journey sets
// at rest using AES-GCM. The stored set becomes a single opaque envelope
// journey; the real journeys only exist decrypted in memory.
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.JourneyStore) ports.JourneyStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, name string, journeys []domain.Journey) error {
	// 1. Serialize the real set
	plainText, err := json.Marshal(journeys)
	if err != nil {
		return fmt.Errorf("failed to marshal journeys: %w", err)
	}

	// 2. Encrypt
	ciphertext, err := encrypt(plainText, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt journeys: %w", err)
	}

	// 3. Create the envelope. Step one carries the ciphertext; nothing
	// else about the set leaks into the underlying store.
	envelope := []domain.Journey{{
		ID:   envelopeID,
		Name: "encrypted",
		Steps: []domain.Step{{
			Order:       1,
			Description: base64.StdEncoding.EncodeToString(ciphertext),
		}},
	}}

	return m.next.Save(ctx, name, envelope)
}

func (m *encryptionMiddleware) Load(ctx context.Context, name string) ([]domain.Journey, error) {
	// 1. Load the envelope
	envelope, err := m.next.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	// 2. Extract ciphertext. A set that is not an envelope either predates
	// encryption or was written by an unencrypted writer; fail secure
	// rather than silently passing plaintext through.
	if len(envelope) != 1 || envelope[0].ID != envelopeID || len(envelope[0].Steps) == 0 {
		return nil, errors.New("journey set is missing the encrypted envelope")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope[0].Steps[0].Description)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	// 3. Decrypt (try active, then fallback)
	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt journeys: %w", err)
	}

	// 4. Deserialize
	var journeys []domain.Journey
	if err := json.Unmarshal(plainText, &journeys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decrypted journeys: %w", err)
	}

	return journeys, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
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

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
