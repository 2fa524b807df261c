package passphrase

import (
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceware(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		count     int
		wantCount int
	}{
		{name: "negative", count: -1, wantCount: MinWords},
		{name: "zero", count: 0, wantCount: MinWords},
		{name: "five", count: 5, wantCount: 5},
		{name: "above max", count: MaxWords + 1, wantCount: MaxWords},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Diceware(tt.count)
			require.NoError(t, err)
			assert.Len(t, strings.Split(got, "-"), tt.wantCount)
		})
	}
}

func TestPredefinedDicewareStrengths(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		generate  func() (string, error)
		wantCount int
	}{
		{name: "basic", generate: Basic, wantCount: BasicWords},
		{name: "strong", generate: Strong, wantCount: StrongWords},
		{name: "paranoid", generate: Paranoid, wantCount: ParanoidWords},
		{name: "master", generate: Master, wantCount: MasterWords},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.generate()
			require.NoError(t, err)
			assert.Len(t, strings.Split(got, "-"), tt.wantCount)
		})
	}
}

//nolint:errcheck
func TestDicewareNeverPanics(t *testing.T) {
	t.Parallel()
	for i := 0; i < 50; i++ {
		f := fuzz.New()
		var count int
		f.Fuzz(&count)
		Diceware(count)
	}
}
