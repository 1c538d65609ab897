package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
)

func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	list := a.assets.GetAll(ctx)
	if !a.assets.Available() {
		fmt.Fprintln(a.out, "Storage is unavailable")
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No assets yet. Use 'add' or 'scan' to record one.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDETAILS")
	for _, as := range list {
		fmt.Fprintln(tw, as.String())
	}
	return tw.Flush()
}

// parseID reads the asset id from args[0], or prompts for it.
func (a *App) parseID(args []string) (int64, error) {
	var s string
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		s, err = GetSimpleText(a.reader, "Asset ID", a.out)
		if err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, a.fail("Invalid asset ID", fmt.Errorf("%q is not a positive number", s))
	}
	return id, nil
}
