// AngelaMos | 2026
// payments.go

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gympulse/gympulse/internal/billing"
	"github.com/gympulse/gympulse/internal/core"
	"github.com/gympulse/gympulse/internal/member"
	"github.com/gympulse/gympulse/internal/payment"
)

func newRecordPaymentCommand() *Command {
	cmd := &Command{
		Name:        "record-payment",
		Description: "Record a payment and advance the member's due date",
		Flags:       flag.NewFlagSet("record-payment", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	memberID := cmd.Flags.Int64("member-id", 0, "Member id (required)")
	amount := cmd.Flags.String("amount", "", "Amount paid (defaults to the member's plan fee)")
	paidOn := cmd.Flags.String("paid-on", "", "Payment date (defaults to today)")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		if *memberID == 0 {
			return fmt.Errorf("--member-id is required")
		}

		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		members := member.NewService(db, defaultMaxMembers)
		payments := payment.NewService(db)

		amountCents := int64(-1)
		if *amount != "" {
			amountCents, err = billing.ParseCents(*amount)
			if err != nil {
				return err
			}
		}

		if amountCents < 0 {
			m, err := members.GetMember(ctx, *memberID)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					return fmt.Errorf("member %d not found", *memberID)
				}
				return err
			}
			amountCents = m.FeeCents
		}

		paidDate := today()
		if *paidOn != "" {
			paidDate, err = parseDate(*paidOn)
			if err != nil {
				return err
			}
		}

		p, nextDue, err := payments.RecordPayment(ctx, *memberID, amountCents, paidDate)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("member %d not found", *memberID)
			}
			return err
		}

		fmt.Printf("Recorded payment #%d of %s for member #%d; next due %s\n",
			p.ID,
			billing.FormatCents(p.AmountCents),
			p.MemberID,
			nextDue.Format(dateLayout),
		)
		return nil
	}

	return cmd
}

func newListPaymentsCommand() *Command {
	cmd := &Command{
		Name:        "list-payments",
		Description: "List recorded payments, optionally for one member",
		Flags:       flag.NewFlagSet("list-payments", flag.ExitOnError),
	}

	dbURL := addDatabaseFlag(cmd.Flags)
	memberID := cmd.Flags.Int64("member-id", 0, "Limit to one member (all by default)")

	cmd.Run = func(ctx context.Context, _ *Command, _ []string) error {
		db, err := openDatabase(ctx, *dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		members := member.NewService(db, defaultMaxMembers)
		payments := payment.NewService(db)

		var list []payment.Payment
		if *memberID != 0 {
			m, err := members.GetMember(ctx, *memberID)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					return fmt.Errorf("member %d not found", *memberID)
				}
				return err
			}

			list, err = payments.ListPayments(ctx, *memberID)
			if err != nil {
				return err
			}

			fmt.Printf("Payments for %s (#%d):\n", m.Name, m.ID)
		} else {
			list, err = payments.ListAllPayments(ctx)
			if err != nil {
				return err
			}

			fmt.Println("All payments:")
		}

		if len(list) == 0 {
			fmt.Println("  none recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMember\tAmount\tPaid On\tRecorded At")
		for _, p := range list {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
				p.ID,
				p.MemberID,
				billing.FormatCents(p.AmountCents),
				p.PaidOn.Format(dateLayout),
				p.RecordedAt.UTC().Format("2006-01-02 15:04:05"),
			)
		}
		return w.Flush()
	}

	return cmd
}
