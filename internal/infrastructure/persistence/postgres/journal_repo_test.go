package postgres

import (
	"context"
	"testing"
	"time"

	"trade-journal/internal/domain/journal"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRepo_UpsertEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO journal_entries").
		WithArgs("a-1", "2024-03-04", "Took the opening drive setup.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("e-1", now, now))

	e, err := repo.UpsertEntry(context.Background(), journal.Entry{
		AccountID: "a-1",
		Date:      "2024-03-04",
		Notes:     "Took the opening drive setup.",
	})
	if err != nil {
		t.Fatalf("UpsertEntry failed: %v", err)
	}
	if e.ID != "e-1" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestRepo_ListEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "account_id", "entry_date", "notes", "created_at", "updated_at"}).
		AddRow("e-1", "a-1", "2024-03-04", "day one", now, now).
		AddRow("e-2", "a-1", "2024-03-05", "day two", now, now)

	mock.ExpectQuery("SELECT (.+) FROM journal_entries").
		WithArgs("a-1", "2024-03-01", "2024-03-31").
		WillReturnRows(rows)

	entries, err := repo.ListEntries(context.Background(), "a-1", "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 2 || entries[1].Date != "2024-03-05" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestRepo_GetStrategy_WithItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM strategies").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "name", "created_at", "updated_at"}).
			AddRow("s-1", "a-1", "Opening Range", now, now))
	mock.ExpectQuery("SELECT (.+) FROM strategy_items").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "strategy_id", "order_index", "text"}).
			AddRow("i-1", "s-1", 0, "Wait for range break").
			AddRow("i-2", "s-1", 1, "Confirm volume"))

	s, err := repo.GetStrategy(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("GetStrategy failed: %v", err)
	}
	if len(s.Items) != 2 || s.Items[1].OrderIndex != 1 {
		t.Errorf("unexpected strategy: %+v", s)
	}
}

func TestRepo_SetChecklist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)

	mock.ExpectQuery("INSERT INTO checklist_state").
		WithArgs("a-1", "2024-03-04", "s-1", "i-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c-1"))

	st, err := repo.SetChecklist(context.Background(), journal.ChecklistState{
		AccountID:  "a-1",
		Date:       "2024-03-04",
		StrategyID: "s-1",
		ItemID:     "i-1",
		Checked:    true,
	})
	if err != nil {
		t.Fatalf("SetChecklist failed: %v", err)
	}
	if st.ID != "c-1" || !st.Checked {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestRepo_CreateScreenshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO screenshots").
		WithArgs("a-1", "2024-03-04", "t-1", "https://charts.example.com/1.png", "entry chart").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("sc-1", now))

	s, err := repo.CreateScreenshot(context.Background(), journal.Screenshot{
		AccountID:   "a-1",
		Date:        "2024-03-04",
		TradeID:     "t-1",
		FileURL:     "https://charts.example.com/1.png",
		Description: "entry chart",
	})
	if err != nil {
		t.Fatalf("CreateScreenshot failed: %v", err)
	}
	if s.ID != "sc-1" {
		t.Errorf("unexpected screenshot: %+v", s)
	}
}
