// Command useradd creates a panel account.
//
//	useradd -email admin@ulp.mx -name "Ana López" -role admin
//
// The password is read from PANEL_PASSWORD, or from the first line of stdin
// when that is unset.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ulp/panel/internal/config"
	"github.com/ulp/panel/internal/db"
	"github.com/ulp/panel/internal/logging"
	"github.com/ulp/panel/internal/user"
)

func main() {
	var (
		email = flag.String("email", "", "Account email (required)")
		name  = flag.String("name", "", "Full name")
		role  = flag.String("role", user.RoleAdmin, "Role: admin or editor")
	)
	flag.Parse()

	if err := run(*email, *name, *role); err != nil {
		color.New(color.FgHiRed).Fprintf(os.Stderr, "useradd: %v\n", err)
		os.Exit(1)
	}
}

func run(email, name, role string) error {
	if email == "" {
		flag.Usage()
		return errors.New("-email is required")
	}
	password, err := readPassword(os.Getenv("PANEL_PASSWORD"), os.Stdin)
	if err != nil {
		return err
	}

	cfg := config.Load()
	log := logging.New(cfg.AppEnv, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL, log); err != nil {
		return err
	}

	u, err := user.NewService(user.NewRepository(pool)).Create(ctx, email, name, password, role)
	if errors.Is(err, user.ErrAlreadyExists) {
		return fmt.Errorf("an account for %s already exists", email)
	}
	if err != nil {
		return err
	}

	color.New(color.FgHiGreen).Printf("created %s account %d for %s\n", u.Role, u.ID, u.Email)
	return nil
}

// readPassword prefers fromEnv and otherwise takes the first line of r.
func readPassword(fromEnv string, r io.Reader) (string, error) {
	if fromEnv != "" {
		return fromEnv, nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required (set PANEL_PASSWORD or pipe it on stdin)")
	}
	return password, nil
}
