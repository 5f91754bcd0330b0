package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolution_WrapsSentinel(t *testing.T) {
	err := Resolution(ErrMemberNotFound, `schema: "CBaseEntity"::"m_nope"`)

	require.ErrorIs(t, err, ErrMemberNotFound)
	require.True(t, IsResolutionFailure(err))
	require.Contains(t, err.Error(), "member not found")
}

func TestIsResolutionFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"class sentinel", ErrClassNotFound, true},
		{"chain sentinel", ErrChainNotFound, true},
		{"wrapped", fmt.Errorf("resolve: %w", ErrClassNotFound), true},
		{"bounds", ErrOutOfBounds, false},
		{"format wrapping resolution", &Error{Kind: ErrKindFormat, Msg: "dump", Err: ErrClassNotFound}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsResolutionFailure(tt.err))
		})
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	require.Equal(t, "<nil>", e.Error())
}

func TestSchemaKey_String(t *testing.T) {
	k := SchemaKey{Offset: 0x34, Networked: true}
	require.Equal(t, "0x34 (networked=true)", k.String())
}
