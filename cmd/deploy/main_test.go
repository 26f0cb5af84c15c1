package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulp/panel/internal/deploy"
)

func TestRunArguments(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "deploy", "env", "dev.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o755))
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"cloudRunConfig":{"serviceName":"ulp-panel","source":"app"},"envVars":{"A":"1"}}`), 0o644))

	d := &deploy.Deployer{Root: root, Out: &bytes.Buffer{}, DryRun: true}
	ctx := context.Background()

	assert.Error(t, run(ctx, d, ".env.local", nil))
	assert.Error(t, run(ctx, d, ".env.local", []string{"frontend"}))
	assert.Error(t, run(ctx, d, ".env.local", []string{"service", "tools", "quote"}))
	assert.Error(t, run(ctx, d, ".env.local", []string{"rollback"}))
	assert.ErrorIs(t, run(ctx, d, ".env.local", []string{"frontend", "prod"}), deploy.ErrConfigNotFound)

	assert.NoError(t, run(ctx, d, ".env.local", []string{"frontend", "dev"}))
	require.NoError(t, run(ctx, d, ".env.local", []string{"env"}))
	assert.FileExists(t, filepath.Join(root, ".env.local"))
}
