// AngelaMos | 2026
// export.go

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gympulse/gympulse/internal/member"
)

func newExportCommand() *Command {
	cmd := &Command{
		Name:        "export",
		Description: "Export the full member roster as CSV",
		Flags:       flag.NewFlagSet("export", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	output := cmd.Flags.String("output", "", "Destination file (defaults to stdout)")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := member.NewService(db, defaultMaxMembers)

		members, err := svc.AllMembers(ctx)
		if err != nil {
			return err
		}

		out := os.Stdout
		if *output != "" {
			f, err := os.Create(*output)
			if err != nil {
				return fmt.Errorf("create %s: %w", *output, err)
			}
			defer f.Close()
			out = f
		}

		if err := member.WriteCSV(out, members); err != nil {
			return err
		}

		if *output != "" {
			fmt.Printf("Exported %d members to %s\n", len(members), *output)
		}
		return nil
	}

	return cmd
}
