package testutil

import (
	"testing"

	"github.com/arjunveda/studentspend/internal/storage"
	"github.com/arjunveda/studentspend/internal/storage/jsonfile"
)

// SetupTestStorage returns a jsonfile-backed storage rooted in a temp dir.
func SetupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	s, err := jsonfile.New(t.TempDir())
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
