package store

import (
	"encoding/binary"
	"encoding/hex"

	"page-replacement-simulator/internal/engine/policy"

	"golang.org/x/crypto/sha3"
)

// Key derives the cache key of a simulation request.
func Key(kind policy.Kind, refs []int, capacity int) string {
	h := sha3.New256()
	var buf [binary.MaxVarintLen64]byte

	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write(buf[:binary.PutVarint(buf[:], int64(capacity))])
	h.Write(buf[:binary.PutUvarint(buf[:], uint64(len(refs)))])
	for _, r := range refs {
		h.Write(buf[:binary.PutVarint(buf[:], int64(r))])
	}
	return hex.EncodeToString(h.Sum(nil))
}
