package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
)

// revealFlag, given after the id, shows the password in clear text.
const revealFlag = "--reveal"

func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	reveal := slices.Contains(args, revealFlag)
	args = slices.DeleteFunc(slices.Clone(args), func(s string) bool { return s == revealFlag })

	id, err := a.parseID(args)
	if err != nil {
		return err
	}

	as, err := a.loadAsset(ctx, id)
	if err != nil {
		return err
	}

	a.printAsset(as, reveal)
	return nil
}

// loadAsset fetches id and reports a missing asset or a storage problem to the user.
func (a *App) loadAsset(ctx context.Context, id int64) (models.Asset, error) {
	as, err := a.assets.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintf(a.out, "Asset %d not found\n", id)
		return models.Asset{}, err
	}
	if err != nil {
		return models.Asset{}, a.fail("Error loading asset", err)
	}
	return as, nil
}

func (a *App) printAsset(as models.Asset, reveal bool) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", as.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", models.OrPlaceholder(as.Name))
	fmt.Fprintf(tw, "Category:\t%s\n", models.OrPlaceholder(models.CategoryLabel(as.Category)))
	fmt.Fprintf(tw, "Account:\t%s\n", models.OrPlaceholder(as.Account))
	fmt.Fprintf(tw, "Password:\t%s\n", models.MaskPassword(as.Password, reveal))
	fmt.Fprintf(tw, "Note:\t%s\n", models.OrPlaceholder(as.Note))
	fmt.Fprintf(tw, "Image:\t%s\n", models.OrPlaceholder(as.ImageURI))
	fmt.Fprintf(tw, "Created:\t%s\n", models.FormatDate(as.Created(a.loc)))
	_ = tw.Flush()
}
