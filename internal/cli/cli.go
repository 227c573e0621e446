// AngelaMos | 2026
// cli.go

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gympulse/gympulse/internal/core"
)

// Command is one gymctl subcommand with its own flag set.
type Command struct {
	Name        string
	Description string
	Flags       *flag.FlagSet
	Run         func(ctx context.Context, cmd *Command, args []string) error
}

type RootCommand struct {
	commands []*Command
}

func NewRootCommand() *RootCommand {
	return &RootCommand{
		commands: []*Command{
			newAddMemberCommand(),
			newListMembersCommand(),
			newDeleteMemberCommand(),
			newRecordPaymentCommand(),
			newListPaymentsCommand(),
			newExportCommand(),
			newInitDBCommand(),
			newInitKeysCommand(),
			newHashPasswordCommand(),
		},
	}
}

func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		r.usage()
		return fmt.Errorf("no command given")
	}

	name := args[0]
	for _, cmd := range r.commands {
		if cmd.Name != name {
			continue
		}

		if err := cmd.Flags.Parse(args[1:]); err != nil {
			return fmt.Errorf("parse flags: %w", err)
		}

		return cmd.Run(ctx, cmd, cmd.Flags.Args())
	}

	r.usage()
	return fmt.Errorf("unknown command %q", name)
}

func (r *RootCommand) usage() {
	fmt.Fprintln(os.Stderr, "Usage: gymctl <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, cmd := range r.commands {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", cmd.Name, cmd.Description)
	}
}

// addDatabaseFlag wires the shared --database-url flag, defaulting to
// the DATABASE_URL environment variable.
func addDatabaseFlag(fs *flag.FlagSet) *string {
	return fs.String(
		"database-url",
		os.Getenv("DATABASE_URL"),
		"PostgreSQL connection string (defaults to DATABASE_URL)",
	)
}

func openDatabase(ctx context.Context, url string) (*sqlx.DB, error) {
	if url == "" {
		return nil, fmt.Errorf(
			"no database configured: pass --database-url or set DATABASE_URL",
		)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(connectCtx, "pgx", url)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := core.EnsureSchema(ctx, db); err != nil {
		_ = db.Close() //nolint:errcheck // cleanup on schema failure
		return nil, err
	}

	return db, nil
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid date %q, expect %s",
			value,
			dateLayout,
		)
	}
	return d, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
