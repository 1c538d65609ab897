package cli

import (
	"context"
	"fmt"
)

// Delete removes an asset after asking for confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	return a.deleteAsset(ctx, args, true)
}

func (a *App) deleteAsset(ctx context.Context, args []string, ask bool) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := a.parseID(args)
	if err != nil {
		return err
	}

	as, err := a.loadAsset(ctx, id)
	if err != nil {
		return err
	}

	if ask {
		ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", as.Name), a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
	}

	if err := a.assets.Delete(ctx, id); err != nil {
		return a.fail("Error deleting asset", err)
	}

	fmt.Fprintf(a.out, "Asset %d deleted\n", id)
	return nil
}
