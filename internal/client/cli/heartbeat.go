package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/client/services"
)

// Heartbeat prints the check-in status, or switches check-ins on or off
// when args[0] is "on" or "off".
func (a *App) Heartbeat(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 || args[0] == "status" {
		return a.heartbeatStatus(ctx)
	}

	switch strings.ToLower(args[0]) {
	case "on", "enable":
		return a.setHeartbeat(ctx, true)
	case "off", "disable":
		return a.setHeartbeat(ctx, false)
	}
	fmt.Fprintln(a.out, "Usage: heartbeat [status|on|off]")
	return fmt.Errorf("unknown heartbeat action %q", args[0])
}

func (a *App) heartbeatStatus(ctx context.Context) error {
	s := a.heartbeat.Settings(ctx)

	state := "off"
	if s.Enabled {
		state = "on"
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Heartbeat:\t%s\n", state)
	fmt.Fprintf(tw, "Frequency:\t%s\n", s.Frequency)
	fmt.Fprintf(tw, "Last confirmed:\t%s\n", services.DescribeLastConfirm(s.LastConfirmAt, a.loc))
	fmt.Fprintf(tw, "Next check:\t%s\n", services.DescribeNextCheck(s.LastConfirmAt, s.Frequency, a.loc))
	return tw.Flush()
}

func (a *App) setHeartbeat(ctx context.Context, on bool) error {
	if err := a.heartbeat.SetEnabled(ctx, on); err != nil {
		return a.fail("Error saving heartbeat setting", err)
	}
	if on {
		fmt.Fprintln(a.out, "Heartbeat is on")
	} else {
		fmt.Fprintln(a.out, "Heartbeat is off")
	}
	return nil
}

// Frequency sets the check-in cadence from args[0], or prompts for it.
func (a *App) Frequency(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var s string
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		s, err = GetSimpleText(a.reader, "Frequency (monthly, quarterly)", a.out)
		if err != nil {
			return err
		}
	}

	f, err := models.ParseFrequency(s)
	if err != nil {
		return a.fail("Invalid frequency", err)
	}
	if err := a.heartbeat.SetFrequency(ctx, f); err != nil {
		return a.fail("Error saving frequency", err)
	}

	fmt.Fprintf(a.out, "Frequency set to %s\n", f)
	return nil
}

// ConfirmAlive records a check-in now and prints the next check date.
func (a *App) ConfirmAlive(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ts, err := a.heartbeat.ConfirmNow(ctx)
	if err != nil {
		return a.fail("Error confirming", err)
	}

	f := a.heartbeat.Frequency(ctx)
	fmt.Fprintf(a.out, "Confirmed on %s. Next check: %s\n",
		services.DescribeLastConfirm(ts, a.loc),
		services.DescribeNextCheck(ts, f, a.loc))
	return nil
}
