package types

import (
	"encoding/hex"
	"fmt"
)

type Hash [32]byte

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short is the first eight hex characters, enough to tell reports apart in logs.
func (h Hash) Short() string {
	return h.String()[:8]
}

func HashFromString(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash string %q: %w", s, err)
	}
	if len(b) != len(Hash{}) {
		return Hash{}, fmt.Errorf("invalid hash length: %d", len(b))
	}

	var h Hash
	copy(h[:], b)
	return h, nil
}
