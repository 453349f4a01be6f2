package hash

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"

	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of Sum's output.
const DigestLengthBytes = 32

// BytesWithDomain is a piece of data tagged with the domain it belongs to.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// Hash is a domain separated BLAKE3 hasher used to derive key identifiers.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash initialized with the given domain label.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString(domain)
	return hash
}

// Sum returns DigestLengthBytes bytes derived from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.h.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes each value to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - *big.Int
//   - encoding.BinaryMarshaler
//
// Every value is framed with its type name and length, so distinct sequences
// never produce the same input stream.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var toBeWritten BytesWithDomain
		switch t := d.(type) {
		case []byte:
			if t == nil {
				return errors.New("hash.WriteAny: nil []byte")
			}
			toBeWritten = BytesWithDomain{"[]byte", t}
		case *big.Int:
			if t == nil {
				return errors.New("hash.WriteAny: write *big.Int: nil")
			}
			bytes, _ := t.GobEncode()
			toBeWritten = BytesWithDomain{"big.Int", bytes}
		case encoding.BinaryMarshaler:
			name := reflect.TypeOf(t)
			bytes, err := t.MarshalBinary()
			if err != nil {
				return fmt.Errorf("hash.WriteAny: %s: %w", name.String(), err)
			}
			toBeWritten = BytesWithDomain{name.String(), bytes}
		default:
			return fmt.Errorf("hash.WriteAny: invalid type %T", d)
		}
		hash.writeBytesWithDomain(toBeWritten)
	}
	return nil
}

// writeBytesWithDomain writes `(<domain_size><domain><data_size><data>)`.
func (hash *Hash) writeBytesWithDomain(toBeWritten BytesWithDomain) {
	var sizeBuf [8]byte

	_, _ = hash.h.WriteString("(")
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.TheDomain)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.WriteString(toBeWritten.TheDomain)
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.Bytes)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.Write(toBeWritten.Bytes)
	_, _ = hash.h.WriteString(")")
}

// Fingerprint hashes the integers under domain. It returns nil if any of them
// is nil.
func Fingerprint(domain string, xs ...*big.Int) []byte {
	h := New(domain)
	for _, x := range xs {
		if err := h.WriteAny(x); err != nil {
			return nil
		}
	}
	return h.Sum()
}
