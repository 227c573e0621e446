// AngelaMos | 2026
// keys.go

package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gympulse/gympulse/internal/auth"
	"github.com/gympulse/gympulse/internal/core"
)

func newInitDBCommand() *Command {
	cmd := &Command{
		Name:        "init-db",
		Description: "Create the database schema if it does not exist",
		Flags:       flag.NewFlagSet("init-db", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		// openDatabase runs the schema as part of connecting.
		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Println("Database schema is up to date.")
		return nil
	}

	return cmd
}

func newInitKeysCommand() *Command {
	cmd := &Command{
		Name:        "init-keys",
		Description: "Generate an ES256 key pair for API token signing",
		Flags:       flag.NewFlagSet("init-keys", flag.ExitOnError),
	}

	privateKey := cmd.Flags.String(
		"private-key",
		"keys/jwt_private.pem",
		"Path for the private key",
	)
	publicKey := cmd.Flags.String(
		"public-key",
		"keys/jwt_public.pem",
		"Path for the public key",
	)

	cmd.Run = func(_ context.Context, _ *Command, _ []string) error {
		if _, err := os.Stat(*privateKey); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", *privateKey)
		}

		if dir := filepath.Dir(*privateKey); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("create key directory: %w", err)
			}
		}

		if err := auth.GenerateKeyPair(*privateKey, *publicKey); err != nil {
			return err
		}

		fmt.Printf("Wrote %s and %s\n", *privateKey, *publicKey)
		return nil
	}

	return cmd
}

func newHashPasswordCommand() *Command {
	cmd := &Command{
		Name:        "hash-password",
		Description: "Hash an admin password for ADMIN_PASSWORD_HASH",
		Flags:       flag.NewFlagSet("hash-password", flag.ExitOnError),
	}

	cmd.Run = func(_ context.Context, _ *Command, args []string) error {
		var password string
		if len(args) > 0 {
			password = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := core.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Println(hash)
		return nil
	}

	return cmd
}
