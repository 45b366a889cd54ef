package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorCarriesSuggestion(t *testing.T) {
	err := &ValidationError{
		Rule:       "ServerNameRule",
		Detail:     "server name is empty",
		Suggestion: "give every server a non-empty name",
	}

	msg := err.Error()
	assert.Contains(t, msg, "ServerNameRule")
	assert.Contains(t, msg, "Suggestion:")
	assert.Contains(t, msg, "non-empty name")
}

func TestFormatErrorLocation(t *testing.T) {
	tests := []struct {
		name string
		err  *FormatError
		want []string
	}{
		{
			name: "with location",
			err:  &FormatError{Path: "/tmp/config.json", Line: 3, Column: 7, Detail: "unexpected token"},
			want: []string{"line 3", "column 7", "unexpected token"},
		},
		{
			name: "without location",
			err:  &FormatError{Path: "/tmp/config.json", Detail: "unexpected end of input"},
			want: []string{"/tmp/config.json", "unexpected end of input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, w := range tt.want {
				assert.Contains(t, msg, w)
			}
			assert.Contains(t, msg, "Suggestion:")
		})
	}
}

func TestFilesystemErrorUnwrap(t *testing.T) {
	err := NewFilesystemError("rename temp file", "/tmp/config.json", io.ErrClosedPipe)

	assert.Contains(t, err.Error(), "rename temp file")
	assert.Contains(t, err.Error(), "/tmp/config.json")
	assert.True(t, Is(err, io.ErrClosedPipe))
}

func TestExitError(t *testing.T) {
	base := New("boom")

	userErr := NewUserError(base, "check your input")
	require.Equal(t, ExitUser, userErr.Code)
	assert.Equal(t, "boom", userErr.Error())
	assert.True(t, Is(userErr, base))

	sysErr := NewSystemError(base, "check permissions")
	require.Equal(t, ExitSystem, sysErr.Code)

	var target *ExitError
	require.True(t, As(Wrap(userErr, "outer"), &target))
	assert.Equal(t, "check your input", target.Suggestion)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrInvalidBackupName, ErrUnsupportedPath, ErrBackupFailed}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b))
		}
	}
}
