package domain

import "github.com/alexedwards/argon2id"

var defaultArgonParams = &argon2id.Params{
	Memory:      19 * 1024, // 19 MB
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// LightArgonParams keep hashing cheap for tests and local seeding.
var LightArgonParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPasswordHasher struct {
	params *argon2id.Params
}

func NewArgonPasswordHasher() *ArgonPasswordHasher {
	return NewArgonPasswordHasherWithParams(defaultArgonParams)
}

func NewArgonPasswordHasherWithParams(params *argon2id.Params) *ArgonPasswordHasher {
	return &ArgonPasswordHasher{
		params: params,
	}
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, ph.params)
}

// VerifyPassword checks against the parameters encoded in hashedPassword, so
// hashes made with other params still verify.
func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hashedPassword)
}
