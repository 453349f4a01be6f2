package rsa

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Ciphertext holds one encrypted integer per character.
type Ciphertext []*big.Int

// WriteTo writes the elements as newline-delimited decimals.
func (c Ciphertext) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range c {
		n, err := io.WriteString(w, e.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadCiphertext reads newline-delimited decimals. Surrounding whitespace on a
// line is ignored; an empty or non-integer line is an error.
func ReadCiphertext(r io.Reader) (Ciphertext, error) {
	var ct Ciphertext
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		e, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("%w: invalid element %q on line %d", ErrMalformedCiphertext, text, line)
		}
		ct = append(ct, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ct, nil
}
