package termapp

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purbtool/purb/passphrase"
)

func newTestPrompt(input string) (*Prompt, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Prompt{in: bufio.NewReader(strings.NewReader(input)), out: out}, out
}

func TestSuggestPassphraseWordsAccepted(t *testing.T) {
	p, out := newTestPrompt("words\ny\n")
	suggestion, ok, err := p.suggestPassphrase()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, suggestion)
	assert.Contains(t, out.String(), "Suggested passphrase:")
}

func TestSuggestPassphraseCharactersAccepted(t *testing.T) {
	p, _ := newTestPrompt("characters\ny\n")
	suggestion, ok, err := p.suggestPassphrase()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, suggestion, passphrase.CharacterProfileStrong.Length)
}

func TestSuggestPassphraseDeclined(t *testing.T) {
	p, _ := newTestPrompt("words\nn\n")
	_, ok, err := p.suggestPassphrase()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSuggestPassphraseUnknownStyle(t *testing.T) {
	p, _ := newTestPrompt("nonsense\n")
	_, _, err := p.suggestPassphrase()
	require.Error(t, err)
}

func TestKeyfilePathsStopsOnEmptyLine(t *testing.T) {
	p, _ := newTestPrompt("a.key\nb.key\n\n")
	paths, err := p.KeyfilePaths()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.key", "b.key"}, paths)
}

func TestConfirmDefaultsOnEmptyAnswer(t *testing.T) {
	p, _ := newTestPrompt("\n")
	got, err := p.Confirm("proceed?", true)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCommentDefaultsOnEmptyAnswer(t *testing.T) {
	p, _ := newTestPrompt("\n")
	got, err := p.Comment("fallback.txt")
	require.NoError(t, err)
	assert.Equal(t, "fallback.txt", got)
}
