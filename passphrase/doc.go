// Package passphrase suggests high-entropy secrets for the operator to use
// as a passphrase, in two styles: word-based (easier to memorize and type
// twice) and character-based (denser, harder to memorize). Neither
// generator is used anywhere in the cryptoblob pipeline itself; both are
// offered only as a convenience at the interactive passphrase prompt.
package passphrase
