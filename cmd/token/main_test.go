package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_PrintsJSONToken(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "cli-secret")
	t.Setenv("STORE_DRIVER", "memory")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--subject", "u-1", "--name", "Hannah Arendt", "--role", "manager", "--json"})

	require.NoError(t, cmd.Execute())

	var resp auth.TokenResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotZero(t, resp.ExpiresAt)
}

func TestRootCommand_RejectsUnknownRole(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--subject", "u-1", "--name", "X", "--role", "admin"})

	err := cmd.Execute()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "role")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
