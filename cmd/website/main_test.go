package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/modules/site"
	"github.com/firstengineering/website/pkg/config"
	"github.com/firstengineering/website/svc/contact"
)

func setupEnv(t *testing.T, env map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MAIL_PROVIDER", "dev")
	t.Setenv("MAIL_DEV_DIR", dir)
	for k, v := range env {
		t.Setenv(k, v)
	}

	config.Reset()
	t.Cleanup(config.Reset)
	return dir
}

func execute(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestMailTest(t *testing.T) {
	dir := setupEnv(t, nil)

	out, err := execute(context.Background(), "mail", "test", "--to", "owner@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "via dev to owner@example.com")

	metadata, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	require.Len(t, metadata, 1)

	raw, err := os.ReadFile(metadata[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"to": "owner@example.com"`)
	assert.Contains(t, string(raw), `"reply_to": "mail-test@example.com"`)
	assert.Contains(t, string(raw), "Mail delivery test")
}

func TestMailTest_RequiresRecipient(t *testing.T) {
	setupEnv(t, nil)

	_, err := execute(context.Background(), "mail", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"to"`)
}

func TestMailTest_InvalidSender(t *testing.T) {
	setupEnv(t, map[string]string{"RESEND_FROM_EMAIL": "not an address"})

	_, err := execute(context.Background(), "mail", "test", "--to", "owner@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, contact.ErrMisconfigured)
}

func TestMailTest_MissingEnvFile(t *testing.T) {
	setupEnv(t, nil)

	_, err := execute(context.Background(), "--env-file", filepath.Join(t.TempDir(), "missing.env"), "mail", "test", "--to", "owner@example.com")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestServe_UnknownRateLimitStore(t *testing.T) {
	setupEnv(t, map[string]string{"RATE_LIMIT_STORE": "memcached"})

	_, err := execute(context.Background(), "serve", "--addr", "127.0.0.1:0")
	assert.ErrorIs(t, err, site.ErrInvalidConfig)
}

func TestServe_StopsWithContext(t *testing.T) {
	setupEnv(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := execute(ctx, "serve", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}
