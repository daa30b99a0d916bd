// Package id generates identifiers used to correlate requests and messages.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ulidLen is 10 timestamp chars + 16 random chars.
const ulidLen = 26

// ErrInvalidULID is returned by ULIDTime for malformed input.
var ErrInvalidULID = errors.New("invalid ulid")

// NewULID generates a ULID (Universally Unique Lexicographically Sortable Identifier).
// IDs generated in later milliseconds sort after earlier ones.
func NewULID() string {
	return newULID(time.Now())
}

func newULID(now time.Time) string {
	var entropy [10]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		binary.BigEndian.PutUint64(entropy[:8], uint64(now.UnixNano()))
	}

	var out [ulidLen]byte

	// 48-bit millisecond timestamp, most significant 5-bit group first.
	ms := uint64(now.UnixMilli())
	for i := 9; i >= 0; i-- {
		out[i] = crockfordBase32[ms&0x1F]
		ms >>= 5
	}

	// 80 random bits as two chunks of 40 bits (8 chars each).
	hi := uint64(entropy[0])<<32 | uint64(binary.BigEndian.Uint32(entropy[1:5]))
	lo := uint64(entropy[5])<<32 | uint64(binary.BigEndian.Uint32(entropy[6:10]))
	for i := 17; i >= 10; i-- {
		out[i] = crockfordBase32[hi&0x1F]
		hi >>= 5
	}
	for i := 25; i >= 18; i-- {
		out[i] = crockfordBase32[lo&0x1F]
		lo >>= 5
	}

	return string(out[:])
}

// ULIDTime returns the creation time encoded in a ULID.
func ULIDTime(ulid string) (time.Time, error) {
	if len(ulid) != ulidLen {
		return time.Time{}, ErrInvalidULID
	}
	var ms uint64
	for i := range 10 {
		v := strings.IndexByte(crockfordBase32, ulid[i])
		if v < 0 {
			return time.Time{}, ErrInvalidULID
		}
		ms = ms<<5 | uint64(v)
	}
	return time.UnixMilli(int64(ms)), nil
}
