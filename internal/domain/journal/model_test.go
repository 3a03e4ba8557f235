package journal

import "testing"

func TestTrade_Validate(t *testing.T) {
	valid := Trade{
		Date:        "2024-03-04",
		Time:        "09:35",
		Instrument:  "NQ",
		Side:        SideLong,
		Result:      ResultWin,
		Contracts:   2,
		RiskRewardR: 1.5,
		Pnl:         150,
	}

	tests := []struct {
		name    string
		mutate  func(tr *Trade)
		wantErr bool
	}{
		{name: "Valid", mutate: func(tr *Trade) {}, wantErr: false},
		{name: "Valid Without Time", mutate: func(tr *Trade) { tr.Time = "" }, wantErr: false},
		{name: "Bad Date", mutate: func(tr *Trade) { tr.Date = "03/04/2024" }, wantErr: true},
		{name: "Bad Time", mutate: func(tr *Trade) { tr.Time = "9am" }, wantErr: true},
		{name: "Missing Instrument", mutate: func(tr *Trade) { tr.Instrument = "" }, wantErr: true},
		{name: "Unsupported Side", mutate: func(tr *Trade) { tr.Side = "FLAT" }, wantErr: true},
		{name: "Unsupported Result", mutate: func(tr *Trade) { tr.Result = "PUSH" }, wantErr: true},
		{name: "Win With Negative Pnl", mutate: func(tr *Trade) { tr.Pnl = -10 }, wantErr: true},
		{name: "Loss With Positive Pnl", mutate: func(tr *Trade) { tr.Result = ResultLoss; tr.Pnl = 10 }, wantErr: true},
		{name: "Loss With Negative Pnl", mutate: func(tr *Trade) { tr.Result = ResultLoss; tr.Pnl = -10 }, wantErr: false},
		{name: "Breakeven Nonzero Pnl", mutate: func(tr *Trade) { tr.Result = ResultBreakeven; tr.Pnl = 1 }, wantErr: true},
		{name: "Breakeven Zero Pnl", mutate: func(tr *Trade) { tr.Result = ResultBreakeven; tr.Pnl = 0 }, wantErr: false},
		{name: "Zero Contracts", mutate: func(tr *Trade) { tr.Contracts = 0 }, wantErr: true},
		{name: "Negative RiskReward", mutate: func(tr *Trade) { tr.RiskRewardR = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)
			err := tr.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_Validate(t *testing.T) {
	if err := (Entry{Date: "2024-01-31"}).Validate(); err != nil {
		t.Errorf("valid entry: %v", err)
	}
	if err := (Entry{Date: "yesterday"}).Validate(); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestScreenshot_Validate(t *testing.T) {
	if err := (Screenshot{Date: "2024-01-31", FileURL: "file:///shot.png"}).Validate(); err != nil {
		t.Errorf("valid screenshot: %v", err)
	}
	if err := (Screenshot{Date: "2024-01-31"}).Validate(); err == nil {
		t.Error("expected error for missing file_url")
	}
}
