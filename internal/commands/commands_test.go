package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/tokenpkg"
)

const testKey = "12345678901234567890123456789012"

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	body := "TOKEN_TYPE=jwt\nTOKEN_SYMMETRIC_KEY=" + testKey + "\nACCESS_TOKEN_DURATION=15m\nGO_ENV=production\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(body), 0o600))

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	require.ElementsMatch(t, []string{"serve", "reconcile", "migrate", "token"}, names)

	reconcile, _, err := cmd.Find([]string{"reconcile", "overdue"})
	require.NoError(t, err)
	require.Equal(t, "overdue", reconcile.Name())
}

func TestTokenCommand(t *testing.T) {
	dir := writeConfig(t)

	out, err := execute(t, "token", "alice", "--role", domain.RoleAdmin, "--config", dir)
	require.NoError(t, err)

	maker, err := tokenpkg.NewJWTMaker(testKey)
	require.NoError(t, err)

	payload, err := maker.VerifyToken(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "alice", payload.Username)
	require.Equal(t, domain.RoleAdmin, payload.Role)
}

func TestTokenCommandRejectsUnknownRole(t *testing.T) {
	_, err := execute(t, "token", "alice", "--role", "ROOT", "--config", writeConfig(t))
	require.ErrorContains(t, err, `unknown role "ROOT"`)
}

func TestCommandsFailWithoutConfig(t *testing.T) {
	_, err := execute(t, "reconcile", "capacity", "--config", t.TempDir())
	require.ErrorContains(t, err, "loading config")
}
