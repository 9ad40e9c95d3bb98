package nbtstore

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Fingerprint identifies the encoded bytes of a stored compound.
type Fingerprint [32]byte

func (fp Fingerprint) String() string {
	return fp.HexString()
}

func (fp Fingerprint) HexString() string {
	return hex.EncodeToString(fp[:])
}

func Hash(data []byte) Fingerprint {
	return blake3.Sum256(data)
}

func (fp Fingerprint) MarshalText() ([]byte, error) {
	return []byte(fp.HexString()), nil
}
