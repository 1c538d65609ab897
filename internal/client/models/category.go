package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/legacykeeper/internal/common"
)

// Category classifies an asset.
type Category string

const (
	CategoryBank   Category = "bank"
	CategoryCard   Category = "card"
	CategorySocial Category = "social"
	CategoryOther  Category = "other"
)

// CategoryOption pairs a category with its display label.
type CategoryOption struct {
	Value Category
	Label string
}

// Categories is the closed set offered at the input boundary, in menu order.
var Categories = []CategoryOption{
	{Value: CategoryBank, Label: "Bank account"},
	{Value: CategoryCard, Label: "Credit card"},
	{Value: CategorySocial, Label: "Social account"},
	{Value: CategoryOther, Label: "Other"},
}

// ParseCategory accepts a known category value (case-insensitive).
func ParseCategory(s string) (Category, error) {
	v := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c.Value == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidCategory, s)
}

// CategoryLabel returns the display label of s, or s itself for values that
// are not part of the known set.
func CategoryLabel(s string) string {
	for _, c := range Categories {
		if string(c.Value) == s {
			return c.Label
		}
	}
	return s
}
