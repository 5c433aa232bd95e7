// Package cryptox implements password digests for stored user credentials.
//
// Digests use argon2id and are encoded in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// The salt and key are unpadded standard base64. Every digest carries its own
// parameters, so verification keeps working after the defaults change.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16

	// Upper bounds accepted when parsing a stored digest. A digest outside
	// them is treated as malformed rather than burning CPU or memory.
	maxArgonTime   uint32 = 16
	maxArgonMemory uint32 = 1024 * 1024
	minKeyLen             = 16
	maxKeyLen             = 64
)

var b64 = base64.RawStdEncoding

// HashPassword derives a new digest from plain using a fresh random salt.
// Two calls with the same input never return the same string.
func HashPassword(plain string) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)

	pw := []byte(plain)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword reports whether plain matches digest. A malformed digest
// never matches.
func VerifyPassword(plain, digest string) bool {
	p, err := parseDigest(digest)
	if err != nil {
		return false
	}

	pw := []byte(plain)
	defer common.WipeByteArray(pw)

	candidate := argon2.IDKey(pw, p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(candidate, p.key) == 1
}

type digestParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parseDigest(digest string) (*digestParams, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, fmt.Errorf("unsupported digest format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("bad version: %w", err)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	p := &digestParams{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, fmt.Errorf("bad parameters: %w", err)
	}
	if p.time == 0 || p.time > maxArgonTime || p.memory == 0 || p.memory > maxArgonMemory || p.threads == 0 {
		return nil, fmt.Errorf("parameters out of range")
	}

	var err error
	if p.salt, err = b64.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return nil, fmt.Errorf("bad salt")
	}
	if p.key, err = b64.DecodeString(parts[5]); err != nil || len(p.key) < minKeyLen || len(p.key) > maxKeyLen {
		return nil, fmt.Errorf("bad key")
	}

	return p, nil
}
