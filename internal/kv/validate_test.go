package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methyl/wrangler/internal/settings"
)

func TestValidateTarget_MissingAccountID(t *testing.T) {
	target := &settings.Target{Name: "test-target"}

	err := ValidateTarget(target)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"account_id"}, configErr.MissingFields)
	assert.Contains(t, err.Error(), "account_id")
}

func TestValidateTarget_OK(t *testing.T) {
	target := &settings.Target{Name: "test-target", AccountID: "abc123"}
	assert.NoError(t, ValidateTarget(target))
}
