// Package display formats ciphertexts for the console programs.
package display

import (
	"math/big"
	"strings"
)

const (
	// LineLength is the width of an ElGamal ciphertext line.
	LineLength = 50
	// ChunkSize is the number of RSA ciphertext elements printed per line.
	ChunkSize = 10
)

// Lines cuts s into consecutive pieces of at most width characters.
// A non-positive width returns s unchanged.
func Lines(s string, width int) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	if width <= 0 {
		return []string{s}
	}
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for i := 0; i < len(runes); i += width {
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[i:end]))
	}
	return lines
}

// Chunks groups xs into consecutive slices of at most size elements. The
// chunks share the backing array of xs.
func Chunks[T any](xs []T, size int) [][]T {
	if len(xs) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{xs}
	}
	chunks := make([][]T, 0, (len(xs)+size-1)/size)
	for i := 0; i < len(xs); i += size {
		end := i + size
		if end > len(xs) {
			end = len(xs)
		}
		chunks = append(chunks, xs[i:end:end])
	}
	return chunks
}

// List renders xs as "[a, b, c]".
func List(xs []*big.Int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
