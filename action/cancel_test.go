package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purbtool/purb/action"
)

func TestCancelFlagLifecycle(t *testing.T) {
	var flag action.CancelFlag
	assert.False(t, flag.IsSet())
	flag.Set()
	assert.True(t, flag.IsSet())
	flag.Reset()
	assert.False(t, flag.IsSet())
}
