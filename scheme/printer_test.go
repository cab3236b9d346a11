package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintValue(t *testing.T) {
	assert.Equal(t, "()", Empty.String())
	assert.Equal(t, "42", Int64(42).String())
	assert.Equal(t, "-1", Int64(-1).String())
	assert.Equal(t, "#t", True.String())
	assert.Equal(t, "#f", False.String())
	assert.Equal(t, "foo", Sym("foo").String())
	assert.Equal(t, "(1 . 2)", ConsVal(Int64(1), Int64(2)).String())
	assert.Equal(t, "(1 2 3)", ConsVal(Int64(1), ConsVal(Int64(2), ConsVal(Int64(3), Empty))).String())
	assert.Equal(t, "(1 2 . 3)", ConsVal(Int64(1), ConsVal(Int64(2), Int64(3))).String())
}
