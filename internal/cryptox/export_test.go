package cryptox

import "golang.org/x/crypto/argon2"

func deriveForTest(plain string, p *digestParams, keyLen uint32) []byte {
	return argon2.IDKey([]byte(plain), p.salt, p.time, p.memory, p.threads, keyLen)
}
