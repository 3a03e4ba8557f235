package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	appauth "trade-journal/internal/application/auth"
	appjournal "trade-journal/internal/application/journal"
	authDomain "trade-journal/internal/domain/auth"
	"trade-journal/internal/domain/journal"
	"trade-journal/internal/domain/stats"
	authinfra "trade-journal/internal/infrastructure/auth"

	"github.com/google/uuid"
)

// Store 為開發模式使用的記憶體資料庫，實作 application 層的全部儲存介面。
// 沒有設定 DB_DSN 時 API server 會以此取代 Postgres。
type Store struct {
	mu          sync.RWMutex
	users       map[string]authDomain.User
	sessions    map[string]authDomain.Session
	accounts    map[string]journal.Account
	trades      map[string]journal.Trade
	entries     map[string]journal.Entry
	strategies  map[string]journal.Strategy
	items       map[string]journal.StrategyItem
	checklist   map[string]journal.ChecklistState
	screenshots map[string]journal.Screenshot
}

// NewStore 建立新的記憶體 Store 實例。
func NewStore() *Store {
	return &Store{
		users:       make(map[string]authDomain.User),
		sessions:    make(map[string]authDomain.Session),
		accounts:    make(map[string]journal.Account),
		trades:      make(map[string]journal.Trade),
		entries:     make(map[string]journal.Entry),
		strategies:  make(map[string]journal.Strategy),
		items:       make(map[string]journal.StrategyItem),
		checklist:   make(map[string]journal.ChecklistState),
		screenshots: make(map[string]journal.Screenshot),
	}
}

func newID() string {
	return uuid.NewString()
}

// SeedUsers 建立示範帳號與預設交易帳戶供登入測試。
func (s *Store) SeedUsers() {
	hash, err := authinfra.HashPassword("password123")
	if err != nil {
		hash = "password123"
	}
	user, _ := s.CreateUser(context.Background(), authDomain.User{
		Email:        "trader@example.com",
		DisplayName:  "Trader",
		Status:       authDomain.StatusActive,
		PasswordHash: hash,
	})
	_, _ = s.CreateAccount(context.Background(), journal.Account{
		UserID: user.ID,
		Name:   "Main",
	})
}

// UserRepository impl
func (s *Store) FindByEmail(ctx context.Context, email string) (authDomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return authDomain.User{}, appauth.ErrUserNotFound
}

func (s *Store) FindByID(ctx context.Context, id string) (authDomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return authDomain.User{}, appauth.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, user authDomain.User) (authDomain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return authDomain.User{}, appauth.ErrEmailTaken
		}
	}
	user.ID = newID()
	s.users[user.ID] = user
	return user, nil
}

// SessionStore impl
func (s *Store) SaveSession(ctx context.Context, sess authDomain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *Store) GetSession(ctx context.Context, token string) (authDomain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return authDomain.Session{}, appjournal.ErrNotFound
	}
	return sess, nil
}

func (s *Store) RevokeSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return appjournal.ErrNotFound
	}
	now := time.Now()
	sess.RevokedAt = &now
	s.sessions[token] = sess
	return nil
}

// Repository impl: accounts
func (s *Store) CreateAccount(ctx context.Context, account journal.Account) (journal.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account.ID = newID()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	s.accounts[account.ID] = account
	return account, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (journal.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return journal.Account{}, appjournal.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, userID string) ([]journal.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account journal.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.accounts[account.ID]
	if !ok {
		return appjournal.ErrNotFound
	}
	cur.Name = account.Name
	cur.UpdatedAt = time.Now()
	s.accounts[account.ID] = cur
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return appjournal.ErrNotFound
	}
	delete(s.accounts, id)
	for tid, t := range s.trades {
		if t.AccountID == id {
			delete(s.trades, tid)
		}
	}
	for eid, e := range s.entries {
		if e.AccountID == id {
			delete(s.entries, eid)
		}
	}
	for sid, st := range s.strategies {
		if st.AccountID == id {
			for iid, it := range s.items {
				if it.StrategyID == sid {
					delete(s.items, iid)
				}
			}
			delete(s.strategies, sid)
		}
	}
	for cid, c := range s.checklist {
		if c.AccountID == id {
			delete(s.checklist, cid)
		}
	}
	for scid, sc := range s.screenshots {
		if sc.AccountID == id {
			delete(s.screenshots, scid)
		}
	}
	return nil
}

// Repository impl: trades
func (s *Store) CreateTrade(ctx context.Context, trade journal.Trade) (journal.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trade.ID = newID()
	trade.CreatedAt = time.Now()
	trade.UpdatedAt = trade.CreatedAt
	s.trades[trade.ID] = trade
	return trade, nil
}

func (s *Store) GetTrade(ctx context.Context, id string) (journal.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trades[id]
	if !ok {
		return journal.Trade{}, appjournal.ErrNotFound
	}
	return t, nil
}

// ListTrades 回傳帳戶交易，依 session date、再依時間遞增排序。
func (s *Store) ListTrades(ctx context.Context, accountID string) ([]journal.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Trade
	for _, t := range s.trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di := stats.SessionDate(out[i].Date, out[i].Time)
		dj := stats.SessionDate(out[j].Date, out[j].Time)
		if di != dj {
			return di < dj
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (s *Store) UpdateTrade(ctx context.Context, trade journal.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.trades[trade.ID]
	if !ok {
		return appjournal.ErrNotFound
	}
	trade.AccountID = cur.AccountID
	trade.CreatedAt = cur.CreatedAt
	trade.UpdatedAt = time.Now()
	s.trades[trade.ID] = trade
	return nil
}

func (s *Store) DeleteTrade(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trades[id]; !ok {
		return appjournal.ErrNotFound
	}
	delete(s.trades, id)
	return nil
}

// Repository impl: entries
func (s *Store) UpsertEntry(ctx context.Context, entry journal.Entry) (journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if e.AccountID == entry.AccountID && e.Date == entry.Date {
			e.Notes = entry.Notes
			e.UpdatedAt = time.Now()
			s.entries[id] = e
			return e, nil
		}
	}
	entry.ID = newID()
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	s.entries[entry.ID] = entry
	return entry, nil
}

func (s *Store) GetEntry(ctx context.Context, accountID, date string) (journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.AccountID == accountID && e.Date == date {
			return e, nil
		}
	}
	return journal.Entry{}, appjournal.ErrNotFound
}

func (s *Store) ListEntries(ctx context.Context, accountID, start, end string) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Entry
	for _, e := range s.entries {
		if e.AccountID != accountID {
			continue
		}
		if start != "" && e.Date < start {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Repository impl: strategies
func (s *Store) CreateStrategy(ctx context.Context, strategy journal.Strategy) (journal.Strategy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	strategy.ID = newID()
	strategy.Items = nil
	strategy.CreatedAt = time.Now()
	strategy.UpdatedAt = strategy.CreatedAt
	s.strategies[strategy.ID] = strategy
	return strategy, nil
}

func (s *Store) GetStrategy(ctx context.Context, id string) (journal.Strategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.strategies[id]
	if !ok {
		return journal.Strategy{}, appjournal.ErrNotFound
	}
	st.Items = s.itemsOf(id)
	return st, nil
}

func (s *Store) ListStrategies(ctx context.Context, accountID string) ([]journal.Strategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Strategy
	for _, st := range s.strategies {
		if st.AccountID == accountID {
			st.Items = s.itemsOf(st.ID)
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) itemsOf(strategyID string) []journal.StrategyItem {
	var items []journal.StrategyItem
	for _, it := range s.items {
		if it.StrategyID == strategyID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
	return items
}

func (s *Store) UpdateStrategy(ctx context.Context, strategy journal.Strategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.strategies[strategy.ID]
	if !ok {
		return appjournal.ErrNotFound
	}
	cur.Name = strategy.Name
	cur.UpdatedAt = time.Now()
	s.strategies[strategy.ID] = cur
	return nil
}

func (s *Store) DeleteStrategy(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.strategies[id]; !ok {
		return appjournal.ErrNotFound
	}
	delete(s.strategies, id)
	for iid, it := range s.items {
		if it.StrategyID == id {
			delete(s.items, iid)
		}
	}
	for cid, c := range s.checklist {
		if c.StrategyID == id {
			delete(s.checklist, cid)
		}
	}
	return nil
}

func (s *Store) CreateStrategyItem(ctx context.Context, item journal.StrategyItem) (journal.StrategyItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = newID()
	s.items[item.ID] = item
	return item, nil
}

func (s *Store) GetStrategyItem(ctx context.Context, id string) (journal.StrategyItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return journal.StrategyItem{}, appjournal.ErrNotFound
	}
	return it, nil
}

func (s *Store) DeleteStrategyItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return appjournal.ErrNotFound
	}
	delete(s.items, id)
	for cid, c := range s.checklist {
		if c.ItemID == id {
			delete(s.checklist, cid)
		}
	}
	return nil
}

func (s *Store) ListChecklist(ctx context.Context, accountID, date string) ([]journal.ChecklistState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.ChecklistState
	for _, c := range s.checklist {
		if c.AccountID == accountID && c.Date == date {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StrategyID != out[j].StrategyID {
			return out[i].StrategyID < out[j].StrategyID
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (s *Store) SetChecklist(ctx context.Context, state journal.ChecklistState) (journal.ChecklistState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.checklist {
		if c.AccountID == state.AccountID && c.Date == state.Date && c.ItemID == state.ItemID {
			c.Checked = state.Checked
			s.checklist[id] = c
			return c, nil
		}
	}
	state.ID = newID()
	s.checklist[state.ID] = state
	return state, nil
}

// Repository impl: screenshots
func (s *Store) CreateScreenshot(ctx context.Context, shot journal.Screenshot) (journal.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shot.ID = newID()
	shot.CreatedAt = time.Now()
	s.screenshots[shot.ID] = shot
	return shot, nil
}

func (s *Store) GetScreenshot(ctx context.Context, id string) (journal.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.screenshots[id]
	if !ok {
		return journal.Screenshot{}, appjournal.ErrNotFound
	}
	return sc, nil
}

func (s *Store) ListScreenshots(ctx context.Context, accountID, date string) ([]journal.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []journal.Screenshot
	for _, sc := range s.screenshots {
		if sc.AccountID != accountID {
			continue
		}
		if date != "" && sc.Date != date {
			continue
		}
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) DeleteScreenshot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.screenshots[id]; !ok {
		return appjournal.ErrNotFound
	}
	delete(s.screenshots, id)
	return nil
}
