// Package padding derives the deterministic padding length that disguises
// a cryptoblob's true payload size, keyed by the session's secret pad_key.
package padding

import "math/big"

const (
	percent = 25
	scale   = 100
)

var twoTo64 = new(big.Int).Lsh(big.NewInt(1), 64)

// Forward computes the padding length P for a plaintext-side size of
// unpaddedSize bytes under padKey:
//
//	P = unpaddedSize * padKey * 25 / (2^64 * 100)
//
// The intermediate product can exceed 64 bits (padKey alone spans the full
// uint64 range), so the computation is carried out in arbitrary precision
// and truncated back to uint64 only once, at the end.
func Forward(unpaddedSize, padKey uint64) uint64 {
	num := new(big.Int).Mul(bigUint64(unpaddedSize), bigUint64(padKey))
	num.Mul(num, big.NewInt(percent))

	den := new(big.Int).Mul(twoTo64, big.NewInt(scale))

	num.Quo(num, den)
	return num.Uint64()
}

// Inverse recovers the padding length P from a padded-side size of
// paddedSize bytes under padKey:
//
//	P = paddedSize * padKey * 25 / (padKey * 25 + 2^64 * 100)
//
// so that Forward(paddedSize-P, padKey) == P for every paddedSize that
// Forward itself could have produced.
func Inverse(paddedSize, padKey uint64) uint64 {
	padKeyTimes25 := new(big.Int).Mul(bigUint64(padKey), big.NewInt(percent))

	num := new(big.Int).Mul(bigUint64(paddedSize), padKeyTimes25)

	den := new(big.Int).Mul(twoTo64, big.NewInt(scale))
	den.Add(den, padKeyTimes25)

	num.Quo(num, den)
	return num.Uint64()
}

func bigUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}
