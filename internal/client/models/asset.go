// Package models defines the client-side records of the vault: assets,
// their categories and the heartbeat check-in settings.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/common"
)

// NoID is returned instead of an id when an insert did not happen.
const NoID int64 = 0

// Asset is one recorded credential or account entry.
type Asset struct {
	// ID is assigned by the store on insert and never reused.
	ID int64

	Name     string
	Category string
	Account  string
	Password string
	Note     string
	ImageURI string

	// CreatedAt is the epoch-millisecond insert time. It never changes.
	CreatedAt int64
}

// Created returns CreatedAt as a time in loc.
func (a Asset) Created(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(a.CreatedAt).In(loc)
}

// Form returns the editable part of a.
func (a Asset) Form() AssetFormData {
	return AssetFormData{
		Name:     a.Name,
		Category: a.Category,
		Account:  a.Account,
		Password: a.Password,
		Note:     a.Note,
		ImageURI: a.ImageURI,
	}
}

func (a Asset) String() string {
	account := MaskAccount(a.Account)
	if account == "" {
		account = Placeholder
	}
	return fmt.Sprintf("%d\t%s\t%s · %s", a.ID, a.Name, CategoryLabel(a.Category), account)
}

// AssetFormData holds the fields a user enters when creating or editing an
// asset. Omitted optional text fields are simply left empty.
type AssetFormData struct {
	Name     string
	Category string
	Account  string
	Password string
	Note     string
	ImageURI string
}

// Validate checks the form at the input boundary: the trimmed name must not
// be empty and the category must be one of the known values. The store does
// not call Validate; it persists whatever it is given.
func (f AssetFormData) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return common.ErrNameRequired
	}
	if _, err := ParseCategory(f.Category); err != nil {
		return err
	}
	return nil
}
