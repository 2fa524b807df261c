// Package purb implements PURB-style cryptoblobs: authenticated,
// passphrase/keyfile-derived ciphertexts that are indistinguishable from
// random bytes, with optional steganographic embedding into container
// files at arbitrary offsets.
//
// The cryptographic core lives in cryptoblob, streamcipher, streammac,
// keyschedule, ikm, and padding. embed and randomfill cover container
// positioning and CSPRNG fill/overwrite. action and cmd/purb wire those
// packages into the interactive console application described in the
// project's specification.
//
// A cryptoblob carries no magic bytes and no version field: every byte
// must be indistinguishable from uniform random data to an observer who
// does not hold the keying material.
package purb
