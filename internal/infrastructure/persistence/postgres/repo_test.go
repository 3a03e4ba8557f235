package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	appjournal "trade-journal/internal/application/journal"
	"trade-journal/internal/domain/journal"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRepo_CreateAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("u-1", "Main").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("a-1", now, now))

	a, err := repo.CreateAccount(context.Background(), journal.Account{UserID: "u-1", Name: "Main"})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if a.ID != "a-1" || a.UserID != "u-1" {
		t.Errorf("unexpected account: %+v", a)
	}
}

func TestRepo_GetAccount_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "created_at", "updated_at"}))

	_, err = repo.GetAccount(context.Background(), "missing")
	if !errors.Is(err, appjournal.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_CreateTrade(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()
	trade := journal.Trade{
		AccountID:   "a-1",
		Date:        "2024-03-04",
		Time:        "09:35",
		Instrument:  "NQ",
		Side:        journal.SideLong,
		Result:      journal.ResultWin,
		Contracts:   2,
		RiskRewardR: 1.5,
		Pnl:         250,
	}

	mock.ExpectQuery("INSERT INTO trades").
		WithArgs("a-1", "2024-03-04", "09:35", "NQ", "LONG", "WIN", 2, 1.5, 250.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("t-1", now, now))

	created, err := repo.CreateTrade(context.Background(), trade)
	if err != nil {
		t.Fatalf("CreateTrade failed: %v", err)
	}
	if created.ID != "t-1" || created.Pnl != 250 {
		t.Errorf("unexpected trade: %+v", created)
	}
}

func TestRepo_ListTrades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "trade_date", "trade_time", "instrument", "side", "result",
		"contracts", "risk_reward_r", "pnl", "created_at", "updated_at",
	}).
		AddRow("t-1", "a-1", "2024-03-04", "09:35", "NQ", "LONG", "WIN", 2, 1.5, 250.0, now, now).
		AddRow("t-2", "a-1", "2024-03-04", "23:50", "NQ", "SHORT", "LOSS", 1, 1.0, -50.0, now, now)

	mock.ExpectQuery("SELECT (.+) FROM trades").
		WithArgs("a-1").
		WillReturnRows(rows)

	trades, err := repo.ListTrades(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("ListTrades failed: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %d", len(trades))
	}
	if trades[0].ID != "t-1" || trades[1].Result != journal.ResultLoss {
		t.Errorf("unexpected trades: %+v", trades)
	}
}

func TestRepo_UpdateTrade_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)

	mock.ExpectExec("UPDATE trades").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateTrade(context.Background(), journal.Trade{ID: "missing", Side: journal.SideLong, Result: journal.ResultWin})
	if !errors.Is(err, appjournal.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_DeleteTrade(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %s", err)
	}
	defer db.Close()

	repo := NewRepo(db)

	mock.ExpectExec("DELETE FROM trades").
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTrade(context.Background(), "t-1"); err != nil {
		t.Fatalf("DeleteTrade failed: %v", err)
	}
}
