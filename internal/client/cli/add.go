package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
)

// Add prompts for a new asset and saves it.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.addAsset(ctx, models.AssetFormData{Category: string(models.CategoryBank)})
}

// Scan imports an image, runs text recognition on it and prefills a new
// asset with the recognised account. A failed recognition still lets the
// user fill the form by hand.
func (a *App) Scan(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	src := ""
	if len(args) > 0 {
		src = args[0]
	} else {
		var err error
		src, err = GetSimpleText(a.reader, "Image path", a.out)
		if err != nil {
			return err
		}
	}

	uri, err := a.images.Import(ctx, src)
	if err != nil {
		return a.fail("Error importing image", err)
	}

	form := models.AssetFormData{ImageURI: uri, Category: string(models.CategoryCard)}

	fmt.Fprintln(a.out, "Recognising...")
	res, err := a.recognizer.Recognize(ctx, uri)
	if err != nil {
		a.log.Warn(ctx, "recognition failed", "uri", uri, "err", err)
		fmt.Fprintln(a.out, "Could not recognise the image, please fill in the details")
	} else {
		form.Account = res.Account
		fmt.Fprintf(a.out, "Recognised account: %s\n", res.Account)
	}

	return a.addAsset(ctx, form)
}

func (a *App) addAsset(ctx context.Context, form models.AssetFormData) error {
	return a.editLoop(ctx, form, func(f models.AssetFormData) error {
		id, err := a.assets.Insert(ctx, f)
		if err != nil {
			return a.fail("Error saving asset", err)
		}
		fmt.Fprintf(a.out, "Asset %d saved\n", id)
		return nil
	})
}

// editLoop prompts for a form starting from cur and passes it to save. When
// the form is invalid or save fails, the user may retry starting from the
// values already entered instead of losing them.
func (a *App) editLoop(ctx context.Context, cur models.AssetFormData, save func(models.AssetFormData) error) error {
	for {
		form, err := a.promptForm(ctx, cur)
		if err == nil {
			err = save(form)
			if err == nil {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return err
		}

		retry, cerr := Confirm(a.reader, "Try again with the values entered?", a.out)
		if cerr != nil || !retry {
			return err
		}
		cur = form
	}
}

// Edit prompts for new values of an existing asset. Empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, args []string) error {
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

	return a.editLoop(ctx, as.Form(), func(f models.AssetFormData) error {
		if err := a.assets.Update(ctx, id, f); err != nil {
			return a.fail("Error updating asset", err)
		}
		fmt.Fprintf(a.out, "Asset %d updated\n", id)
		return nil
	})
}

// promptForm walks the user through the asset fields starting from cur and
// validates the result. An invalid form is returned along with the error so
// the caller can offer it again.
func (a *App) promptForm(ctx context.Context, cur models.AssetFormData) (models.AssetFormData, error) {
	var (
		f   = cur
		err error
	)

	if f.Name, err = GetWithDefault(a.reader, "Name", cur.Name, a.out); err != nil {
		return cur, err
	}

	if f.Category, err = GetWithDefault(a.reader, "Category ("+categoryChoices()+")", cur.Category, a.out); err != nil {
		return cur, err
	}
	if c, perr := models.ParseCategory(f.Category); perr == nil {
		f.Category = string(c)
	}

	if f.Account, err = GetWithDefault(a.reader, "Account", cur.Account, a.out); err != nil {
		return cur, err
	}

	pwPrompt := "Password"
	if cur.Password != "" {
		pwPrompt += " (empty keeps the current one, - clears it)"
	}
	pw, err := GetPassword(a.reader, pwPrompt, a.out)
	if err != nil {
		return cur, err
	}
	switch pw {
	case "":
	case clearValue:
		f.Password = ""
	default:
		f.Password = pw
	}

	note, err := GetMultiline(a.reader, "Note (optional)", a.out)
	if err != nil {
		return cur, err
	}
	switch note {
	case "":
	case clearValue:
		f.Note = ""
	default:
		f.Note = note
	}

	img, err := GetWithDefault(a.reader, "Image path (optional)", cur.ImageURI, a.out)
	if err != nil {
		return cur, err
	}
	if img != "" && img != cur.ImageURI {
		uri, ierr := a.images.Import(ctx, img)
		if ierr != nil {
			f.ImageURI = cur.ImageURI
			return f, a.fail("Error importing image", ierr)
		}
		img = uri
	}
	f.ImageURI = img

	if err := f.Validate(); err != nil {
		return f, a.fail("Invalid asset", err)
	}
	return f, nil
}

func categoryChoices() string {
	vals := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		vals = append(vals, string(c.Value))
	}
	return strings.Join(vals, ", ")
}
