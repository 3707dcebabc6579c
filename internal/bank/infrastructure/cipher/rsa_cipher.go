package cipher

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
)

// RSACipher encrypts with RSA-OAEP over SHA-256.
type RSACipher struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

func NewRSACipher(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) *RSACipher {
	if publicKey == nil && privateKey != nil {
		publicKey = &privateKey.PublicKey
	}

	return &RSACipher{
		privateKey: privateKey,
		publicKey:  publicKey,
	}
}

func (c *RSACipher) Encrypt(plaintext string) ([]byte, error) {
	if c.publicKey == nil {
		return nil, fmt.Errorf("public key is not loaded")
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, c.publicKey, []byte(plaintext), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	return ciphertext, nil
}

func (c *RSACipher) Decrypt(ciphertext []byte) (string, error) {
	if c.privateKey == nil {
		return "", &domain.DecryptionError{Msg: "private key is not loaded"}
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, c.privateKey, ciphertext, nil)
	if err != nil {
		return "", &domain.DecryptionError{Msg: "ciphertext could not be decrypted"}
	}

	return string(plaintext), nil
}
