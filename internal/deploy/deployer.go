package deploy

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Runner executes a command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes wired to the given streams.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Deployer resolves configuration paths under Root and runs deployments.
type Deployer struct {
	Root   string
	Runner Runner
	Out    io.Writer
	DryRun bool
}

// FrontendConfigPath returns the config path of the frontend for env.
func (d *Deployer) FrontendConfigPath(env string) string {
	return filepath.Join(d.Root, "deploy", "env", env+".json")
}

// ServiceConfigPath returns the config path of a monorepo service for env.
func (d *Deployer) ServiceConfigPath(serviceType, serviceName, env string) string {
	return filepath.Join(d.Root, serviceType, serviceName, "deploy_config", "env", env+".json")
}

// Frontend deploys the public frontend. It is always reachable without
// authentication.
func (d *Deployer) Frontend(ctx context.Context, env string) error {
	cfg, err := LoadConfig(d.FrontendConfigPath(env))
	if err != nil {
		return err
	}
	return d.run(ctx, BuildArgs(cfg, string(cfg.CloudRun.Source), true))
}

// Service deploys <serviceType>/<serviceName>. Unauthenticated access is
// granted only when the config sets allowUnauthenticated.
func (d *Deployer) Service(ctx context.Context, serviceType, serviceName, env string) error {
	cfg, err := LoadConfig(d.ServiceConfigPath(serviceType, serviceName, env))
	if err != nil {
		return err
	}
	source := filepath.ToSlash(filepath.Join(serviceType, serviceName))
	return d.run(ctx, BuildArgs(cfg, source, false))
}

// WriteEnv writes the env vars of the frontend config for env to outPath as a
// dotenv file.
func (d *Deployer) WriteEnv(env, outPath string) error {
	cfg, err := LoadConfig(d.FrontendConfigPath(env))
	if err != nil {
		return err
	}
	if err := godotenv.Write(cfg.EnvMap(), outPath); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

func (d *Deployer) run(ctx context.Context, args []string) error {
	fmt.Fprintf(d.Out, "\nExecuting gcloud command:\n\n%s\n\n", FormatCommand(args))
	if d.DryRun {
		return nil
	}
	return d.Runner.Run(ctx, d.Root, Binary, args...)
}
