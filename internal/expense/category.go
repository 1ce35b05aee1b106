package expense

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed spending categories, or a custom label.
type Kind int

const (
	KindFood Kind = iota
	KindTransport
	KindBooks
	KindEntertainment
	KindRent
	KindOther
	KindCustom
)

var kindLabels = map[Kind]string{
	KindFood:          "Food & Drinks",
	KindTransport:     "Transport",
	KindBooks:         "Books & Study",
	KindEntertainment: "Entertainment",
	KindRent:          "Rent & Utilities",
	KindOther:         "Other",
}

// Category is a tagged value: either one of the closed set of known
// categories, or a custom variant carrying an arbitrary non-empty label.
type Category struct {
	kind  Kind
	label string
}

// Categories returns the closed set of known categories in display order.
// The order is stable and is also the 1-based index used by the shell
// `add` command.
func Categories() []Category {
	return []Category{
		{kind: KindFood},
		{kind: KindTransport},
		{kind: KindBooks},
		{kind: KindEntertainment},
		{kind: KindRent},
		{kind: KindOther},
	}
}

// CategoryAt returns the known category at the given 1-based index.
func CategoryAt(index int) (Category, bool) {
	known := Categories()
	if index < 1 || index > len(known) {
		return Category{}, false
	}
	return known[index-1], true
}

// NewCustomCategory creates the custom variant. The label must be non-empty.
func NewCustomCategory(label string) (Category, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Category{}, fmt.Errorf("custom category label cannot be empty")
	}
	return Category{kind: KindCustom, label: label}, nil
}

// ParseCategory maps a stored label back to a category. Known labels map to
// their enumerated variant, anything else becomes a custom category. An empty
// label falls back to Other so malformed stored data stays loadable.
func ParseCategory(label string) Category {
	for k, l := range kindLabels {
		if l == label {
			return Category{kind: k}
		}
	}
	if strings.TrimSpace(label) == "" {
		return Category{kind: KindOther}
	}
	return Category{kind: KindCustom, label: label}
}

func (c Category) Kind() Kind {
	return c.kind
}

// Label returns the display and storage form of the category.
func (c Category) Label() string {
	if c.kind == KindCustom {
		return c.label
	}
	return kindLabels[c.kind]
}

func (c Category) String() string {
	return c.Label()
}
