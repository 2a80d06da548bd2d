package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"
)

// The API-key slot is sealed at rest with AES-GCM. The key is derived from
// a fixed application phrase and a random per-machine salt stored beside the
// database, so a copied database file alone does not expose the credential.
const (
	saltSize   = 32
	keySize    = 32
	iterations = 100000

	sealPhrase = "moodlog-apikey-v1"
)

type sealer struct {
	key []byte
}

func newSealer(dir string) (*sealer, error) {
	salt, err := getOrCreateSalt(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}
	key := pbkdf2.Key([]byte(sealPhrase), salt, iterations, keySize, sha256.New)
	return &sealer{key: key}, nil
}

func getOrCreateSalt(dir string) ([]byte, error) {
	saltPath := filepath.Join(dir, "salt")

	if salt, err := os.ReadFile(saltPath); err == nil {
		if len(salt) == saltSize {
			return salt, nil
		}
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create salt directory: %w", err)
	}
	if err := os.WriteFile(saltPath, salt, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write salt file: %w", err)
	}
	return salt, nil
}

func (s *sealer) seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *sealer) open(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(sealed) < gcm.NonceSize() {
		return "", errors.New("sealed value too short")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
