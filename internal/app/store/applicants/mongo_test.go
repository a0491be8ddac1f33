package applicantstore_test

import (
	"errors"
	"testing"
	"time"

	applicantstore "github.com/harvalefoods/harvalehub/internal/app/store/applicants"
	"github.com/harvalefoods/harvalehub/internal/domain/models"
	"github.com/harvalefoods/harvalehub/internal/testutil"
)

func TestMongo_CreateListUpdateDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicantstore.NewMongo(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, testutil.NewApplicantInput("Amina Odhiambo"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := store.Create(ctx, testutil.NewApplicantInput("Brian Mwangi"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListAll: got %d applicants, want 2", len(all))
	}
	if all[0].ID != second.ID {
		t.Errorf("ListAll order: newest first expected, got %q first", all[0].ID)
	}

	updated, err := store.UpdateStatus(ctx, first.ID, models.StatusRejected)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.StatusRejected {
		t.Errorf("Status: got %q, want %q", updated.Status, models.StatusRejected)
	}
	if updated.FullName != first.FullName {
		t.Errorf("UpdateStatus clobbered other fields: %+v", updated)
	}

	removed, err := store.Delete(ctx, first.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed.ID != first.ID {
		t.Errorf("Delete returned %q, want %q", removed.ID, first.ID)
	}

	all, err = store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != second.ID {
		t.Errorf("after delete: got %+v, want only %q", all, second.ID)
	}
}

func TestMongo_ErrorCases(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicantstore.NewMongo(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.UpdateStatus(ctx, "no-such-id", models.StatusApproved); !errors.Is(err, applicantstore.ErrNotFound) {
		t.Errorf("UpdateStatus missing id: got %v, want ErrNotFound", err)
	}
	if _, err := store.UpdateStatus(ctx, "no-such-id", "archived"); !errors.Is(err, applicantstore.ErrInvalidStatus) {
		t.Errorf("UpdateStatus invalid status: got %v, want ErrInvalidStatus", err)
	}
	if _, err := store.Delete(ctx, "no-such-id"); !errors.Is(err, applicantstore.ErrNotFound) {
		t.Errorf("Delete missing id: got %v, want ErrNotFound", err)
	}
}
