package cipher

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	keyBits = 2048

	privateKeyBlock = "RSA PRIVATE KEY"
	publicKeyBlock  = "PUBLIC KEY"
)

type KeyPaths struct {
	PrivateKey string
	PublicKey  string
}

// LoadOrGenerateKeys reads both PEM files. With generate set and both files
// missing, a fresh pair is created and written first.
func LoadOrGenerateKeys(paths KeyPaths, generate bool) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateExists, err := fileExists(paths.PrivateKey)
	if err != nil {
		return nil, nil, err
	}
	publicExists, err := fileExists(paths.PublicKey)
	if err != nil {
		return nil, nil, err
	}

	if !privateExists && !publicExists && generate {
		if err := GenerateKeys(paths); err != nil {
			return nil, nil, err
		}
	}

	privateKey, err := LoadPrivateKey(paths.PrivateKey)
	if err != nil {
		return nil, nil, err
	}

	publicKey, err := LoadPublicKey(paths.PublicKey)
	if err != nil {
		return nil, nil, err
	}

	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, fmt.Errorf("public key %s does not match private key %s", paths.PublicKey, paths.PrivateKey)
	}

	return privateKey, publicKey, nil
}

func GenerateKeys(paths KeyPaths) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: privateKeyBlock, Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: publicKeyBlock, Bytes: publicDER})

	if err := writeFile(paths.PrivateKey, privatePEM, 0o600); err != nil {
		return err
	}

	return writeFile(paths.PublicKey, publicPEM, 0o644)
}

func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	block, err := readPEM(path)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", path, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key %s is not an RSA key", path)
	}

	return key, nil
}

func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	block, err := readPEM(path)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key %s: %w", path, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key %s is not an RSA key", path)
	}

	return key, nil
}

func readPEM(path string) (*pem.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("key file %s contains no PEM block", path)
	}

	return block, nil
}

func writeFile(path string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create key directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("failed to stat key file: %w", err)
}
