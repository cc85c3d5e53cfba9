package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturesCommandTable(t *testing.T) {
	out, err := runCommand(t, NewFeaturesCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "CV01")
	assert.Contains(t, out, "RC02")
	assert.Contains(t, out, "operator.static-call")
	assert.Contains(t, out, "C++23")
}

func TestFeaturesCommandJSON(t *testing.T) {
	out, err := runCommand(t, NewFeaturesCommand(), "--json")
	require.NoError(t, err)

	var entries []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		MinStandard int    `json:"minStandard"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 12)
	assert.Equal(t, "CV01", entries[0].ID)
	assert.Equal(t, 23, entries[0].MinStandard)
}

func TestFeaturesCommandSingleEntry(t *testing.T) {
	out, err := runCommand(t, NewFeaturesCommand(), "OP01")
	require.NoError(t, err)

	assert.Contains(t, out, "OP01")
	assert.Contains(t, out, "operator.static-call")
	assert.Contains(t, out, "static")
}

func TestFeaturesCommandUnknownEntry(t *testing.T) {
	_, err := runCommand(t, NewFeaturesCommand(), "ZZ99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZZ99")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Contains(t, out, "cxxstd 1.2.3")
}
