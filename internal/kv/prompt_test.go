package kv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmFrom(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		confirmed bool
		wantErr   bool
	}{
		{name: "padded uppercase yes", input: " YES \n", confirmed: true},
		{name: "bare no", input: "NO", confirmed: false},
		{name: "lowercase y", input: "y\n", confirmed: true},
		{name: "lowercase n", input: "n\n", confirmed: false},
		{name: "malformed", input: "maybe\n", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank line", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			confirmed, err := ConfirmFrom(strings.NewReader(tt.input), &out, "Delete everything?")
			if tt.wantErr {
				var inputErr *InputError
				require.ErrorAs(t, err, &inputErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.confirmed, confirmed)
			assert.Contains(t, out.String(), "Delete everything? [y/n]")
		})
	}
}

// Only the first character of the normalized response is compared, so any
// input starting with "y" counts as a confirmation. That boundary is part of
// the contract; pin it down.
func TestConfirmFrom_AcceptsYPrefix(t *testing.T) {
	var out bytes.Buffer
	confirmed, err := ConfirmFrom(strings.NewReader("yup\n"), &out, "Proceed?")
	require.NoError(t, err)
	assert.True(t, confirmed)

	confirmed, err = ConfirmFrom(strings.NewReader("nope\n"), &out, "Proceed?")
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestConfirmFrom_SingleShot(t *testing.T) {
	// A malformed first line must end the confirmation even when valid input
	// follows; there is no retry loop.
	var out bytes.Buffer
	_, err := ConfirmFrom(strings.NewReader("maybe\ny\n"), &out, "Proceed?")
	assert.Error(t, err)
}
