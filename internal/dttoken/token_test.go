package dttoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrimitiveType(t *testing.T) {
	assert.True(t, IsPrimitiveType(TYPE_INT))
	assert.True(t, IsPrimitiveType(TYPE_STR))
	assert.False(t, IsPrimitiveType(IDENTIFIER))
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, IsLiteral(LIT_INT))
	assert.True(t, IsLiteral(LIT_NULL))
	assert.False(t, IsLiteral(TYPE_INT))
}

func TestIsUnaryOp(t *testing.T) {
	assert.True(t, IsUnaryOp(OP_SUB))
	assert.True(t, IsUnaryOp(OP_INC))
	assert.False(t, IsUnaryOp(OP_MUL))
}

func TestIsBinaryOp(t *testing.T) {
	assert.True(t, IsBinaryOp(OP_ADD))
	assert.True(t, IsBinaryOp(OP_LT))
	assert.False(t, IsBinaryOp(OP_INC))
}

func TestIsCompOp_IncludesBitwiseAndBoolean(t *testing.T) {
	// Locked-in (likely unintended upstream) classification: bitwise and
	// boolean operators share comparison precedence.
	assert.True(t, IsCompOp(OP_BIT_OR))
	assert.True(t, IsCompOp(OP_BOOL_AND))
	assert.True(t, IsCompOp(OP_EQ))
	assert.False(t, IsCompOp(OP_LSHIFT))
}

func TestIsAssignOp(t *testing.T) {
	assert.True(t, IsAssignOp(ASSIGN))
	assert.True(t, IsAssignOp(ASSIGN_BIT_XOR))
	assert.False(t, IsAssignOp(OP_EQ))
}

func TestKeywords_ExactSpellings(t *testing.T) {
	cases := map[string]Kind{
		"int": TYPE_INT, "return": RETURN, "while": WHILE,
		"true": LIT_BOOL, "false": LIT_BOOL, "null": LIT_NULL,
	}
	for word, want := range cases {
		got, ok := Keywords[word]
		assert.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "TYPE_INT", TYPE_INT.String())
	assert.Equal(t, "OP_ADD", OP_ADD.String())
}
