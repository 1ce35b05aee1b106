package expense

import "testing"

func TestCategoriesOrder(t *testing.T) {
	want := []string{
		"Food & Drinks",
		"Transport",
		"Books & Study",
		"Entertainment",
		"Rent & Utilities",
		"Other",
	}

	known := Categories()
	if len(known) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(known), len(want))
	}
	for i, c := range known {
		if c.Label() != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, c.Label(), want[i])
		}
	}
}

func TestCategoryAt(t *testing.T) {
	c, ok := CategoryAt(1)
	if !ok || c.Label() != "Food & Drinks" {
		t.Errorf("CategoryAt(1) = %q, %v", c.Label(), ok)
	}

	c, ok = CategoryAt(6)
	if !ok || c.Label() != "Other" {
		t.Errorf("CategoryAt(6) = %q, %v", c.Label(), ok)
	}

	if _, ok = CategoryAt(0); ok {
		t.Error("CategoryAt(0) should be out of range")
	}
	if _, ok = CategoryAt(7); ok {
		t.Error("CategoryAt(7) should be out of range")
	}
}

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		parsed := ParseCategory(c.Label())
		if parsed != c {
			t.Errorf("ParseCategory(%q) = %#v, want %#v", c.Label(), parsed, c)
		}
	}
}

func TestParseCategoryCustom(t *testing.T) {
	c := ParseCategory("Mobile Recharge")
	if c.Kind() != KindCustom {
		t.Fatalf("ParseCategory custom kind = %v, want KindCustom", c.Kind())
	}
	if c.Label() != "Mobile Recharge" {
		t.Errorf("custom label = %q", c.Label())
	}

	// Malformed stored data must stay loadable.
	if c := ParseCategory(""); c.Kind() != KindOther {
		t.Errorf("ParseCategory(\"\") kind = %v, want KindOther", c.Kind())
	}
}

func TestNewCustomCategory(t *testing.T) {
	if _, err := NewCustomCategory("  "); err == nil {
		t.Error("NewCustomCategory with blank label expected error")
	}

	c, err := NewCustomCategory("Gym")
	if err != nil {
		t.Fatalf("NewCustomCategory unexpected error: %v", err)
	}
	if c.Label() != "Gym" {
		t.Errorf("custom label = %q, want Gym", c.Label())
	}
}
