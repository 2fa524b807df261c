package cryptoblob_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/cryptoblob"
)

// TestOutputPassesByteHistogramSanityCheck encrypts two independent
// random-IKM, random-plaintext cryptoblobs and checks that the concatenation
// of their bytes looks uniformly random: every byte value's observed count
// stays within 3 standard deviations of the count a uniform distribution
// would produce.
func TestOutputPassesByteHistogramSanityCheck(t *testing.T) {
	const plaintextSize = 1 << 16

	var combined bytes.Buffer
	for i := 0; i < 2; i++ {
		plaintext := make([]byte, plaintextSize)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		ikm := make([]byte, 32)
		_, err = rand.Read(ikm)
		require.NoError(t, err)

		var blob bytes.Buffer
		_, err = cryptoblob.Encrypt(context.Background(), cryptoblob.EncryptRequest{
			Input:     bytes.NewReader(plaintext),
			InputSize: uint64(len(plaintext)),
			Output:    &blob,
			IKM:       cryptoblob.IKMInput{Passphrase: ikm},
			TimeCost:  4,
		})
		require.NoError(t, err)

		combined.Write(blob.Bytes())
	}

	var histogram [256]int
	data := combined.Bytes()
	for _, b := range data {
		histogram[b]++
	}

	n := float64(len(data))
	p := 1.0 / 256.0
	mean := n * p
	stddev := math.Sqrt(n * p * (1 - p))
	tolerance := 3 * stddev

	for value, count := range histogram {
		deviation := math.Abs(float64(count) - mean)
		if deviation > tolerance {
			t.Errorf("byte value %d occurred %d times, want within %.1f of mean %.1f", value, count, tolerance, mean)
		}
	}
}
