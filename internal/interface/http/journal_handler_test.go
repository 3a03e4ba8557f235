package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"trade-journal/internal/infrastructure/config"
)

func newTestSession(t *testing.T) (*Server, string, string) {
	t.Helper()
	server := NewServer(config.Config{}, nil, nil)
	token := loginAs(t, server, "trader@example.com", "password123")

	w := doJSON(t, server, token, "GET", "/api/accounts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list accounts failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Accounts []struct {
			ID string `json:"id"`
		} `json:"accounts"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Accounts) == 0 {
		t.Fatal("expected seeded account")
	}
	return server, token, resp.Accounts[0].ID
}

func TestAccountHandler_CRUD(t *testing.T) {
	server, token, _ := newTestSession(t)

	w := doJSON(t, server, token, "POST", "/api/accounts", map[string]string{"name": "Sim"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create account failed: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Account struct {
			ID string `json:"id"`
		} `json:"account"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, server, token, "PUT", "/api/accounts/"+created.Account.ID, map[string]string{"name": "Sim 2"})
	if w.Code != http.StatusOK {
		t.Fatalf("rename failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, server, token, "DELETE", "/api/accounts/"+created.Account.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, server, token, "PUT", "/api/accounts/"+created.Account.ID, map[string]string{"name": "gone"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestTradeHandler_CreateAndList(t *testing.T) {
	server, token, accountID := newTestSession(t)

	trade := map[string]interface{}{
		"date":          "2024-03-04",
		"time":          "09:35",
		"instrument":    "NQ",
		"side":          "LONG",
		"result":        "WIN",
		"contracts":     2,
		"risk_reward_r": 1.5,
		"pnl":           250.0,
	}
	w := doJSON(t, server, token, "POST", "/api/accounts/"+accountID+"/trades", trade)
	if w.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d %s", w.Code, w.Body.String())
	}

	t.Run("RejectsInconsistentResult", func(t *testing.T) {
		bad := map[string]interface{}{
			"date": "2024-03-04", "time": "09:35", "instrument": "NQ",
			"side": "LONG", "result": "WIN", "contracts": 1, "pnl": -10.0,
		}
		w := doJSON(t, server, token, "POST", "/api/accounts/"+accountID+"/trades", bad)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for WIN with negative pnl, got %d", w.Code)
		}
	})

	w = doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/trades", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list trades failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Trades []struct {
			ID         string  `json:"id"`
			Instrument string  `json:"instrument"`
			Pnl        float64 `json:"pnl"`
		} `json:"trades"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Trades) != 1 || resp.Trades[0].Instrument != "NQ" {
		t.Fatalf("unexpected trades: %s", w.Body.String())
	}

	t.Run("UpdateAndDelete", func(t *testing.T) {
		id := resp.Trades[0].ID
		upd := map[string]interface{}{
			"date": "2024-03-04", "time": "09:40", "instrument": "NQ",
			"side": "LONG", "result": "WIN", "contracts": 2, "pnl": 300.0,
		}
		w := doJSON(t, server, token, "PUT", "/api/trades/"+id, upd)
		if w.Code != http.StatusOK {
			t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
		}
		w = doJSON(t, server, token, "DELETE", "/api/trades/"+id, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
		}
	})
}

func TestTradeHandler_ForeignAccountForbidden(t *testing.T) {
	server, _, accountID := newTestSession(t)

	// Second user must not see or write into the first user's account.
	reg := map[string]string{"email": "other@example.com", "password": "password123", "display_name": "Other"}
	w := doJSON(t, server, "", "POST", "/api/auth/register", reg)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	w = doJSON(t, server, resp.AccessToken, "GET", "/api/accounts/"+accountID+"/trades", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for foreign account, got %d", w.Code)
	}
}

func TestEntryHandler_UpsertGetList(t *testing.T) {
	server, token, accountID := newTestSession(t)

	w := doJSON(t, server, token, "PUT", "/api/accounts/"+accountID+"/entries/2024-03-04", map[string]string{"notes": "solid open"})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert entry failed: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, server, token, "PUT", "/api/accounts/"+accountID+"/entries/2024-03-04", map[string]string{"notes": "revised"})
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/entries/2024-03-04", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get entry failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Entry struct {
			Notes string `json:"notes"`
		} `json:"entry"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Entry.Notes != "revised" {
		t.Errorf("expected upsert to replace notes, got %q", resp.Entry.Notes)
	}

	w = doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/entries?start=2024-03-01&end=2024-03-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list entries failed: %d %s", w.Code, w.Body.String())
	}
	var list struct {
		Entries []struct {
			Date string `json:"date"`
		} `json:"entries"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Entries) != 1 {
		t.Errorf("expected 1 entry, got %s", w.Body.String())
	}
}

func TestStrategyHandler_ChecklistFlow(t *testing.T) {
	server, token, accountID := newTestSession(t)

	w := doJSON(t, server, token, "POST", "/api/accounts/"+accountID+"/strategies", map[string]string{"name": "Opening Range"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create strategy failed: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Strategy struct {
			ID string `json:"id"`
		} `json:"strategy"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, server, token, "POST", "/api/strategies/"+created.Strategy.ID+"/items", map[string]string{"text": "Wait for range break"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item failed: %d %s", w.Code, w.Body.String())
	}
	var item struct {
		Item struct {
			ID string `json:"id"`
		} `json:"item"`
	}
	json.Unmarshal(w.Body.Bytes(), &item)

	w = doJSON(t, server, token, "PUT", "/api/accounts/"+accountID+"/checklist", map[string]interface{}{
		"date":        "2024-03-04",
		"strategy_id": created.Strategy.ID,
		"item_id":     item.Item.ID,
		"checked":     true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set checklist failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/checklist?date=2024-03-04", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get checklist failed: %d %s", w.Code, w.Body.String())
	}
	var list struct {
		Checklist []struct {
			Checked bool `json:"checked"`
		} `json:"checklist"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Checklist) != 1 || !list.Checklist[0].Checked {
		t.Errorf("unexpected checklist: %s", w.Body.String())
	}

	t.Run("MissingDate", func(t *testing.T) {
		w := doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/checklist", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 without date, got %d", w.Code)
		}
	})
}

func TestScreenshotHandler_AttachListDelete(t *testing.T) {
	server, token, accountID := newTestSession(t)

	w := doJSON(t, server, token, "POST", "/api/accounts/"+accountID+"/screenshots", map[string]string{
		"date":        "2024-03-04",
		"file_url":    "https://charts.example.com/1.png",
		"description": "entry chart",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("attach screenshot failed: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Screenshot struct {
			ID string `json:"id"`
		} `json:"screenshot"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/screenshots?date=2024-03-04", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list screenshots failed: %d %s", w.Code, w.Body.String())
	}
	var list struct {
		Screenshots []struct {
			FileURL string `json:"file_url"`
		} `json:"screenshots"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Screenshots) != 1 {
		t.Fatalf("expected 1 screenshot, got %s", w.Body.String())
	}

	w = doJSON(t, server, token, "DELETE", "/api/screenshots/"+created.Screenshot.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete screenshot failed: %d %s", w.Code, w.Body.String())
	}
}

func TestDashboardHandler(t *testing.T) {
	server, token, accountID := newTestSession(t)

	for _, trade := range []map[string]interface{}{
		{"date": "2024-03-04", "time": "09:35", "instrument": "NQ", "side": "LONG", "result": "WIN", "contracts": 1, "pnl": 100.0},
		{"date": "2024-03-04", "time": "10:05", "instrument": "NQ", "side": "SHORT", "result": "LOSS", "contracts": 1, "pnl": -40.0},
	} {
		w := doJSON(t, server, token, "POST", "/api/accounts/"+accountID+"/trades", trade)
		if w.Code != http.StatusCreated {
			t.Fatalf("create trade failed: %d %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/dashboard?start=2024-03-01&end=2024-03-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Report struct {
			Summary struct {
				NetPnl  float64 `json:"net_pnl"`
				WinRate float64 `json:"win_rate"`
			} `json:"summary"`
			TradeCount    int `json:"trade_count"`
			WinRateByTime []struct {
				Label string `json:"label"`
			} `json:"win_rate_by_time"`
		} `json:"report"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Report.TradeCount != 2 {
		t.Errorf("expected 2 trades in report, got %d", resp.Report.TradeCount)
	}
	if resp.Report.Summary.NetPnl != 60 {
		t.Errorf("expected net pnl 60, got %v", resp.Report.Summary.NetPnl)
	}
	if resp.Report.Summary.WinRate != 50 {
		t.Errorf("expected win rate 50, got %v", resp.Report.Summary.WinRate)
	}
	if len(resp.Report.WinRateByTime) != 5 {
		t.Errorf("expected 5 time buckets, got %d", len(resp.Report.WinRateByTime))
	}

	t.Run("LenientFilterParsing", func(t *testing.T) {
		w := doJSON(t, server, token, "GET", "/api/accounts/"+accountID+"/dashboard?time_bucket=bogus&day_of_week=someday&start=not-a-date", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 with unrecognized filters, got %d", w.Code)
		}
	})
}
