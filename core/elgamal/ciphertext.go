package elgamal

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

var ErrMalformedCiphertext = errors.New("elgamal: malformed ciphertext")

// Ciphertext is a per-character ElGamal ciphertext.
type Ciphertext struct {
	// Elements[i] = s⋅codepoint(message[i]), unreduced
	Elements []*big.Int
	// Shared = gᵏ mod q, needed to recompute s on decryption
	Shared *big.Int
}

type rawCiphertext struct {
	Elements []*big.Int
	Shared   *big.Int
}

// String returns the elements as space-separated decimals.
func (c *Ciphertext) String() string {
	parts := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// ParseCiphertext parses space-separated decimal elements.
func ParseCiphertext(text string, shared *big.Int) (*Ciphertext, error) {
	fields := strings.Fields(text)
	ct := &Ciphertext{
		Elements: make([]*big.Int, len(fields)),
		Shared:   shared,
	}
	for i, f := range fields {
		e, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("%w: invalid element %q", ErrMalformedCiphertext, f)
		}
		ct.Elements[i] = e
	}
	return ct, nil
}

func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&rawCiphertext{Elements: c.Elements, Shared: c.Shared})
}

func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return io.ErrShortBuffer
	}
	raw := &rawCiphertext{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return err
	}
	if raw.Shared == nil {
		return fmt.Errorf("%w: missing shared value", ErrMalformedCiphertext)
	}
	for i, e := range raw.Elements {
		if e == nil {
			return fmt.Errorf("%w: element %d is null", ErrMalformedCiphertext, i)
		}
	}
	c.Elements = raw.Elements
	c.Shared = raw.Shared
	return nil
}
