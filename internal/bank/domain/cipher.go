package domain

//go:generate mockgen -source=cipher.go -destination=../../../gen/mocks/bank/mock_cipher.go -package=mocks

// CredentialCipher protects secrets that travel over the wire. Decrypt
// returns *DecryptionError for malformed or foreign ciphertext.
type CredentialCipher interface {
	Encrypt(plaintext string) ([]byte, error)
	Decrypt(ciphertext []byte) (string, error)
}
