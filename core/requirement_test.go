package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticRequirement(t *testing.T) {
	calls := 0
	r := NewStaticRequirement("bounds", KindIntersection, true, "out of bounds",
		func(s Sample) bool {
			calls++
			return s.(int) > 10
		})

	assert.Equal(t, "bounds", r.Name())
	assert.Equal(t, KindIntersection, r.Kind())
	assert.True(t, r.Optional())
	assert.True(t, r.Active())
	assert.Equal(t, "out of bounds", r.ViolationMsg())

	assert.False(t, r.FalsifiedBy(5))
	assert.True(t, r.FalsifiedBy(11))
	assert.Equal(t, 2, calls)

	r.SetActive(false)
	assert.False(t, r.Active())
}
