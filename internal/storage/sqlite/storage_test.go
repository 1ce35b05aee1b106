package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/storage"
)

func setupStorage(t *testing.T) storage.Storage {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return s
}

func record(t *testing.T, id string, amount int64, category, note, day string) expense.Record {
	t.Helper()

	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	r, err := expense.New(id, amount, expense.ParseCategory(category), note, date)
	if err != nil {
		t.Fatalf("creating record: %v", err)
	}
	return r
}

func TestExpensesRoundTripPreservesOrder(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	records := []expense.Record{
		record(t, "newest", 5000, "Entertainment", "movie night", "2024-03-03"),
		record(t, "middle", 20000, "Food & Drinks", "mess bill", "2024-03-02"),
		record(t, "oldest", 4950, "Transport", "", "2024-03-01"),
	}

	if err := s.SaveExpenses(ctx, records); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	loaded, err := s.LoadExpenses(ctx)
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}

	if len(loaded) != 3 {
		t.Fatalf("loaded %d records, want 3", len(loaded))
	}
	for i, want := range records {
		if loaded[i].ID != want.ID {
			t.Errorf("record %d id = %s, want %s", i, loaded[i].ID, want.ID)
		}
		if loaded[i].Amount != want.Amount || loaded[i].Category != want.Category {
			t.Errorf("record %d = %+v, want %+v", i, loaded[i], want)
		}
	}
}

func TestSaveExpensesReplacesWholeLedger(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	first := []expense.Record{
		record(t, "a", 5000, "Other", "", "2024-03-01"),
		record(t, "b", 1000, "Other", "", "2024-03-01"),
	}
	if err := s.SaveExpenses(ctx, first); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	second := []expense.Record{record(t, "c", 2000, "Transport", "", "2024-03-02")}
	if err := s.SaveExpenses(ctx, second); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	loaded, err := s.LoadExpenses(ctx)
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "c" {
		t.Errorf("ledger after replace = %+v, want single record c", loaded)
	}
}

func TestBudgetUpsert(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	_, ok, err := s.LoadBudget(ctx)
	if err != nil {
		t.Fatalf("LoadBudget: %v", err)
	}
	if ok {
		t.Fatal("LoadBudget reported a budget before any save")
	}

	if err = s.SaveBudget(ctx, 1500000); err != nil {
		t.Fatalf("SaveBudget: %v", err)
	}
	if err = s.SaveBudget(ctx, 2000000); err != nil {
		t.Fatalf("SaveBudget overwrite: %v", err)
	}

	limit, ok, err := s.LoadBudget(ctx)
	if err != nil {
		t.Fatalf("LoadBudget: %v", err)
	}
	if !ok || limit != 2000000 {
		t.Errorf("LoadBudget = %d, %v, want 2000000, true", limit, ok)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	impl := s.(*sqliteStorage)

	if err = impl.applyMigrations(context.Background()); err != nil {
		t.Fatalf("second applyMigrations run: %v", err)
	}

	if err = s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
