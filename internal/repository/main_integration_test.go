//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/localization-service/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all repository integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func newTestDB(t *testing.T) *MongoDB {
	t.Helper()

	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	if err != nil {
		t.Fatalf("failed to connect to test MongoDB: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})
	return db
}
