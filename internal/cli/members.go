// AngelaMos | 2026
// members.go

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
	"github.com/gympulse/gympulse/internal/member"
)

const defaultMaxMembers = 5000

func newAddMemberCommand() *Command {
	cmd := &Command{
		Name:        "add-member",
		Description: "Create a new gym member",
		Flags:       flag.NewFlagSet("add-member", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	name := cmd.Flags.String("name", "", "Member name (required)")
	phone := cmd.Flags.String("phone", "", "Phone number")
	admission := cmd.Flags.String(
		"admission-date",
		today().Format(dateLayout),
		"Admission date (defaults to today)",
	)
	planMonths := cmd.Flags.Int("plan-months", 1, "Billing cycle in months")
	feeAmount := cmd.Flags.String("fee-amount", "", "Plan fee, e.g. 49.90 (required)")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		if *name == "" {
			return fmt.Errorf("--name is required")
		}
		if *feeAmount == "" {
			return fmt.Errorf("--fee-amount is required")
		}

		admissionDate, err := parseDate(*admission)
		if err != nil {
			return err
		}

		feeCents, err := billing.ParseCents(*feeAmount)
		if err != nil {
			return err
		}

		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := member.NewService(db, defaultMaxMembers)

		var memberPhone *string
		if *phone != "" {
			memberPhone = phone
		}

		m, err := svc.CreateMember(ctx, member.CreateMemberInput{
			Name:          *name,
			Phone:         memberPhone,
			AdmissionDate: admissionDate,
			PlanMonths:    *planMonths,
			FeeCents:      feeCents,
		})
		if err != nil {
			if errors.Is(err, core.ErrCapacityExceeded) {
				return fmt.Errorf(
					"member limit of %d has been reached; "+
						"consider exporting or archiving old records",
					defaultMaxMembers,
				)
			}
			return err
		}

		fmt.Printf("Created member #%d: %s (next due %s)\n",
			m.ID,
			m.Name,
			m.NextDueDate.Format(dateLayout),
		)
		return nil
	}

	return cmd
}

func newListMembersCommand() *Command {
	cmd := &Command{
		Name:        "list-members",
		Description: "List the member roster",
		Flags:       flag.NewFlagSet("list-members", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	overdueOnly := cmd.Flags.Bool(
		"overdue-only",
		false,
		"Show only members with overdue fees",
	)
	search := cmd.Flags.String("search", "", "Filter by name or phone")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := member.NewService(db, defaultMaxMembers)

		params := member.ListMembersParams{
			Page:     1,
			PageSize: 100,
			Search:   *search,
		}
		if *overdueOnly {
			params.Status = member.FilterOverdue
		}

		now := today()

		members, total, err := svc.ListMembers(ctx, params, now)
		if err != nil {
			return err
		}

		if len(members) == 0 {
			fmt.Println("No members found.")
			return nil
		}

		renderMembers(members, now)

		if total > len(members) {
			fmt.Printf("(showing %d of %d members)\n", len(members), total)
		}
		return nil
	}

	return cmd
}

func newDeleteMemberCommand() *Command {
	cmd := &Command{
		Name:        "delete-member",
		Description: "Delete a member and their payment history",
		Flags:       flag.NewFlagSet("delete-member", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	memberID := cmd.Flags.Int64("member-id", 0, "Member id (required)")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		if *memberID == 0 {
			return fmt.Errorf("--member-id is required")
		}

		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := member.NewService(db, defaultMaxMembers)

		if err := svc.DeleteMember(ctx, *memberID); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("member %d not found", *memberID)
			}
			return err
		}

		fmt.Printf("Deleted member #%d\n", *memberID)
		return nil
	}

	return cmd
}

func renderMembers(members []member.Member, now time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPhone\tAdmission\tCycle\tFee\tNext Due\tStatus")
	for _, m := range members {
		status := billing.StatusFor(m.NextDueDate, now)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%dmo\t%s\t%s\t%s\n",
			m.ID,
			m.Name,
			m.PhoneOrEmpty(),
			m.AdmissionDate.Format(dateLayout),
			m.PlanMonths,
			billing.FormatCents(m.FeeCents),
			m.NextDueDate.Format(dateLayout),
			status.Label,
		)
	}
	w.Flush()
}
