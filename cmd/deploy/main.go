// Command deploy ships the panel and monorepo services to Cloud Run.
//
//	deploy [flags] frontend <env>
//	deploy [flags] service <serviceType> <serviceName> <env>
//	deploy [flags] env [env]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/ulp/panel/internal/deploy"
)

var (
	titleColor   = color.New(color.FgHiCyan, color.Bold)
	successColor = color.New(color.FgHiGreen)
	errorColor   = color.New(color.FgHiRed)
	infoColor    = color.New(color.FgHiYellow)
)

func main() {
	var (
		root   = flag.String("root", ".", "Project root that configuration paths are resolved against")
		dryRun = flag.Bool("dry-run", false, "Print the gcloud command without running it")
		out    = flag.String("out", filepath.Join("app", ".env.local"), "Output file for the env subcommand, relative to -root")
	)
	flag.Usage = printUsage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := &deploy.Deployer{
		Root:   *root,
		Runner: deploy.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		Out:    os.Stdout,
		DryRun: *dryRun,
	}

	if err := run(ctx, d, *out, flag.Args()); err != nil {
		errorColor.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, d *deploy.Deployer, out string, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("a subcommand is required")
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "frontend":
		if len(rest) != 1 {
			printUsage()
			return fmt.Errorf("environment name is required")
		}
		titleColor.Printf("--- Deploying frontend in [%s] environment ---\n", rest[0])
		if err := d.Frontend(ctx, rest[0]); err != nil {
			return err
		}
		successColor.Println("Cloud Run deployment successful!")

	case "service":
		if len(rest) != 3 {
			printUsage()
			return fmt.Errorf("service type, service name, and environment are required")
		}
		titleColor.Printf("--- Starting deployment for [%s] in [%s] environment ---\n", rest[1], rest[2])
		if err := d.Service(ctx, rest[0], rest[1], rest[2]); err != nil {
			return err
		}
		successColor.Printf("Deployment of [%s] successful!\n", rest[1])

	case "env":
		env := "dev"
		if len(rest) > 0 {
			env = rest[0]
		}
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.Root, path)
		}
		infoColor.Printf("Generating %s from %s.json...\n", path, env)
		if err := d.WriteEnv(env, path); err != nil {
			return err
		}
		successColor.Printf("Successfully created %s from %s.json\n", path, env)

	default:
		printUsage()
		return fmt.Errorf("unknown subcommand %q", cmd)
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s [flags] frontend <env>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s [flags] service <serviceType> <serviceName> <env>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s [flags] env [env]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Example:\n  %s service tools quote-creation-tool dev\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}
