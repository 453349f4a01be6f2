package elgamal

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/textbook-pke/core/math/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookKey() *PrivateKey {
	return NewPrivateKey(&Params{Q: big.NewInt(23), G: big.NewInt(5)}, big.NewInt(6))
}

func TestTextbookScenario(t *testing.T) {
	priv := textbookKey()
	assert.Equal(t, int64(8), priv.H.Int64())

	k := big.NewInt(3)
	ct := EncryptWithNonce(&priv.PublicKey, "A", k)
	assert.Equal(t, int64(10), ct.Shared.Int64())
	assert.Equal(t, int64(12), SharedSecret(&priv.PublicKey, k).Int64())
	require.Len(t, ct.Elements, 1)
	assert.Equal(t, int64(780), ct.Elements[0].Int64())

	msg, err := Decrypt(priv, ct)
	require.NoError(t, err)
	assert.Equal(t, "A", msg)
}

func TestElementsAreNotReduced(t *testing.T) {
	priv := textbookKey()
	ct := EncryptWithNonce(&priv.PublicKey, "Az", big.NewInt(3))
	for _, e := range ct.Elements {
		assert.True(t, e.Cmp(priv.Q) > 0, "element %s must be the raw product", e)
	}
	assert.Equal(t, int64(12*'z'), ct.Elements[1].Int64())
}

func TestGenerateKey(t *testing.T) {
	params, err := GenerateParams(rand.Reader)
	require.NoError(t, err)
	assert.True(t, arith.IsPrime(params.Q))
	assert.True(t, params.Q.Cmp(modulusMin) >= 0)
	assert.True(t, params.Q.Cmp(modulusMax) < 0)
	assert.True(t, params.G.Cmp(big.NewInt(2)) >= 0)
	assert.True(t, params.G.Cmp(params.Q) <= 0)

	priv, err := GenerateKey(rand.Reader, params)
	require.NoError(t, err)
	assert.True(t, arith.Coprime(priv.A, params.Q))
	assert.Equal(t, 0, priv.H.Cmp(new(big.Int).Exp(params.G, priv.A, params.Q)))
}

func TestEncryptDecrypt(t *testing.T) {
	messages := []string{
		"i am a squid",
		"",
		"Привіт, світе!",
		"emoji \U0001F511 key",
	}

	for i := 0; i < 5; i++ {
		params, err := GenerateParams(rand.Reader)
		require.NoError(t, err)
		if params.G.Cmp(params.Q) == 0 {
			// g = q makes every shared secret zero
			continue
		}
		priv, err := GenerateKey(rand.Reader, params)
		require.NoError(t, err)

		for _, m := range messages {
			ct, k, err := Encrypt(rand.Reader, &priv.PublicKey, m)
			require.NoError(t, err)
			assert.True(t, arith.Coprime(k, params.Q))
			assert.Len(t, ct.Elements, len([]rune(m)))

			got, err := Decrypt(priv, ct)
			require.NoError(t, err)
			assert.Equal(t, m, got)
		}
	}
}

func TestDecryptZeroSharedSecret(t *testing.T) {
	// g = q yields h = p = 0
	priv := NewPrivateKey(&Params{Q: big.NewInt(23), G: big.NewInt(23)}, big.NewInt(6))
	ct := EncryptWithNonce(&priv.PublicKey, "hi", big.NewInt(3))
	for _, e := range ct.Elements {
		assert.Zero(t, e.Sign())
	}
	_, err := Decrypt(priv, ct)
	assert.ErrorIs(t, err, ErrZeroSharedSecret)
}

func TestDecryptInvalidCodePoint(t *testing.T) {
	priv := textbookKey()
	ct := &Ciphertext{
		Elements: []*big.Int{new(big.Int).Mul(big.NewInt(12), big.NewInt(0x110000))},
		Shared:   big.NewInt(10),
	}
	_, err := Decrypt(priv, ct)
	assert.ErrorIs(t, err, ErrInvalidCodePoint)
}

func TestCiphertextText(t *testing.T) {
	priv := textbookKey()
	ct := EncryptWithNonce(&priv.PublicKey, "AB", big.NewInt(3))
	assert.Equal(t, "780 792", ct.String())

	parsed, err := ParseCiphertext("  780   792\n", ct.Shared)
	require.NoError(t, err)
	msg, err := Decrypt(priv, parsed)
	require.NoError(t, err)
	assert.Equal(t, "AB", msg)

	_, err = ParseCiphertext("780 x12", ct.Shared)
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestCiphertextBinary(t *testing.T) {
	priv := textbookKey()
	ct := EncryptWithNonce(&priv.PublicKey, "squid", big.NewInt(3))

	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	decoded := &Ciphertext{}
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, ct.String(), decoded.String())
	assert.Equal(t, 0, ct.Shared.Cmp(decoded.Shared))

	assert.Error(t, decoded.UnmarshalBinary(nil))
}

func TestCiphertextBinaryNullElement(t *testing.T) {
	priv := textbookKey()

	data, err := cbor.Marshal(&rawCiphertext{
		Elements: []*big.Int{big.NewInt(780), nil},
		Shared:   big.NewInt(10),
	})
	require.NoError(t, err)

	decoded := &Ciphertext{}
	assert.ErrorIs(t, decoded.UnmarshalBinary(data), ErrMalformedCiphertext)
	assert.Nil(t, decoded.Elements)

	data, err = cbor.Marshal(&rawCiphertext{Elements: []*big.Int{big.NewInt(780)}})
	require.NoError(t, err)
	assert.ErrorIs(t, decoded.UnmarshalBinary(data), ErrMalformedCiphertext)

	// a hand-built ciphertext with a hole is rejected instead of dereferenced
	_, err = Decrypt(priv, &Ciphertext{Elements: []*big.Int{nil}, Shared: big.NewInt(10)})
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
	_, err = Decrypt(priv, &Ciphertext{Elements: []*big.Int{big.NewInt(780)}})
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}
