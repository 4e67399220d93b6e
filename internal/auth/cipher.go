package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// ErrMalformedCiphertext is returned when stored password data cannot be
// decrypted. Login treats it the same as a password mismatch.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

const (
	kdfIterations = 4096
	kdfKeyLen     = 32
)

// kdfSalt is fixed so the same configured secret always derives the same key.
var kdfSalt = []byte("mingle.password.v1")

// PasswordCipher encrypts plaintext passwords at rest with a key derived from
// a shared server secret. It is a reversible cipher, not a hash: login
// decrypts the stored value and compares it to the supplied password.
type PasswordCipher struct {
	aead cipher.AEAD
}

func NewPasswordCipher(secret string) (*PasswordCipher, error) {
	key := pbkdf2.Key([]byte(secret), kdfSalt, kdfIterations, kdfKeyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating gcm: %w", err)
	}

	return &PasswordCipher{aead: aead}, nil
}

// Encrypt seals plain under a fresh nonce and returns base64(nonce || sealed).
func (c *PasswordCipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (c *PasswordCipher) Decrypt(enc string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(enc)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	if len(raw) < c.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	return string(plain), nil
}
