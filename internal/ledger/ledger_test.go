package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/storage"
	"github.com/arjunveda/studentspend/internal/testutil"
)

func food(t *testing.T) expense.Category {
	t.Helper()

	c, ok := expense.CategoryAt(1)
	if !ok {
		t.Fatal("category index 1 missing")
	}
	return c
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)
	l := Open(ctx, store, testutil.TestLogger(t))

	record, err := l.Add(ctx, 20000, food(t), "Lunch")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if record.ID == "" {
		t.Error("Add returned record without id")
	}
	if got := record.Date.Format(expense.DateLayout); got != expense.Day(time.Now()).Format(expense.DateLayout) {
		t.Errorf("record date = %s, want today", got)
	}
	if l.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", l.Len())
	}

	// Mutations persist: a fresh ledger over the same storage sees the record.
	reloaded := Open(ctx, store, testutil.TestLogger(t))
	if reloaded.Len() != 1 {
		t.Errorf("reloaded ledger length = %d, want 1", reloaded.Len())
	}
	if got := reloaded.Records()[0]; got.ID != record.ID || got.Amount != 20000 {
		t.Errorf("reloaded record = %+v", got)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, testutil.SetupTestStorage(t), testutil.TestLogger(t))

	first, err := l.Add(ctx, 1000, food(t), "first")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := l.Add(ctx, 2000, food(t), "second")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	records := l.Records()
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("ledger order = [%s, %s], want newest first", records[0].Note, records[1].Note)
	}
}

func TestAddRejectsInvalidAmount(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)
	l := Open(ctx, store, testutil.TestLogger(t))

	for _, amount := range []int64{0, -500} {
		if _, err := l.Add(ctx, amount, food(t), ""); !errors.Is(err, expense.ErrInvalidAmount) {
			t.Errorf("Add(%d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}

	if l.Len() != 0 {
		t.Errorf("ledger length after rejected adds = %d, want 0", l.Len())
	}

	stored, err := store.LoadExpenses(ctx)
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("rejected add reached storage: %d records", len(stored))
	}
}

func TestIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, testutil.SetupTestStorage(t), testutil.TestLogger(t))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		record, err := l.Add(ctx, 100, food(t), "")
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if seen[record.ID] {
			t.Fatalf("duplicate id %s", record.ID)
		}
		seen[record.ID] = true
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, testutil.SetupTestStorage(t), testutil.TestLogger(t))

	record, err := l.Add(ctx, 20000, food(t), "Lunch")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err = l.Remove(ctx, record.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("ledger length after remove = %d, want 0", l.Len())
	}

	// Second remove of the same id is a no-op.
	if err = l.Remove(ctx, record.ID); err != nil {
		t.Fatalf("second Remove: %v", err)
	}

	// Removing an id that never existed is a no-op too.
	if err = l.Remove(ctx, "no-such-id"); err != nil {
		t.Fatalf("Remove of absent id: %v", err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStorage(t)
	l := Open(ctx, store, testutil.TestLogger(t))

	for i := 0; i < 3; i++ {
		if _, err := l.Add(ctx, 100, food(t), ""); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := l.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("ledger length after clear = %d", l.Len())
	}

	reloaded := Open(ctx, store, testutil.TestLogger(t))
	if reloaded.Len() != 0 {
		t.Errorf("reloaded ledger length after clear = %d", reloaded.Len())
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	l := Open(ctx, testutil.SetupTestStorage(t), testutil.TestLogger(t))

	if _, err := l.Add(ctx, 100, food(t), "original"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	records := l.Records()
	records[0].Note = "mutated"

	if l.Records()[0].Note != "original" {
		t.Error("Records exposed internal slice")
	}
}

// failingStorage fails every save, to prove failed persistence never
// mutates the in-memory ledger.
type failingStorage struct {
	storage.Storage
}

func (f *failingStorage) SaveExpenses(context.Context, []expense.Record) error {
	return errors.New("disk full")
}

func TestAddKeepsLedgerWhenPersistenceFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStorage{Storage: testutil.SetupTestStorage(t)}
	l := Open(ctx, store, testutil.TestLogger(t))

	if _, err := l.Add(ctx, 100, food(t), ""); err == nil {
		t.Fatal("Add expected persistence error")
	}
	if l.Len() != 0 {
		t.Errorf("ledger mutated despite failed save: %d records", l.Len())
	}
}
