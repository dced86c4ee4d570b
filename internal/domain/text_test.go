package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "Your area", CoalesceStr("", "  ", "Your area"))
	assert.Equal(t, "Delhi", CoalesceStr("Delhi", "Your area"))
	assert.Empty(t, CoalesceStr())
	assert.Empty(t, CoalesceStr("", " "))
}
