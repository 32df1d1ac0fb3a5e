package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PROFILES_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProfilesList(t *testing.T) {
	out, err := run(t, "profiles", "list")
	require.NoError(t, err)
	for _, name := range []string{"studio", "classic", "essentials", "identity"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "gpt-4o")
}

func TestProfilesListWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profiles:
  - name: playful
    extends: studio
    description: warmer studio variant
    temperature: 0.9
`), 0o600))

	out, err := run(t, "profiles", "list", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "playful")
	assert.Contains(t, out, "warmer studio variant")
}

func TestProfilesRender(t *testing.T) {
	out, err := run(t, "profiles", "render", "--json", "--brand-name", "Nova", "--industry", "Fintech")
	require.NoError(t, err)

	var rendered map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rendered))
	assert.Equal(t, "studio", rendered["profile"])
	assert.Equal(t, "gpt-4o", rendered["model"])
	user := rendered["user"].(string)
	assert.Contains(t, user, "Brand Name: Nova")
	assert.Contains(t, user, "Industry: Fintech")
	assert.Contains(t, user, "Audience: Not specified")
}

func TestProfilesRenderErrors(t *testing.T) {
	_, err := run(t, "profiles", "render")
	assert.Error(t, err)

	_, err = run(t, "profiles", "render", "--brand-name", "Nova", "--profile", "missing")
	assert.Error(t, err)
}
