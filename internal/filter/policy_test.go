package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicyMissingFileUsesDefaults(t *testing.T) {
	policy, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), policy)
}

func TestLoadPolicyOverridesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	body := "max_age_days: 10\nallowed_locations:\n  - remote\n  - lisbon\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	policy, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 10, policy.MaxAgeDays)
	assert.Equal(t, []string{"remote", "lisbon"}, policy.AllowedLocations)
	//untouched catalogues keep their defaults
	assert.Equal(t, DefaultPolicy().IncludeKeywords, policy.IncludeKeywords)
}

func TestLoadPolicyMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- broken"), 0644))

	_, err := LoadPolicy(path)
	assert.Error(t, err)
}
