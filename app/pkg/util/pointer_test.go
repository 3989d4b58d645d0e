package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	util "backend/insurance-platform/app/pkg/util"
)

func TestGetOrDefault(t *testing.T) {
	t.Run("nil pointer yields default", func(t *testing.T) {
		assert.True(t, util.GetOrDefault[bool](nil, true))
		assert.Equal(t, "fallback", util.GetOrDefault[string](nil, "fallback"))
	})

	t.Run("set pointer wins", func(t *testing.T) {
		v := false
		assert.False(t, util.GetOrDefault(&v, true))
	})
}
