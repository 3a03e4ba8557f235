package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"time"

	appauth "trade-journal/internal/application/auth"
	appjournal "trade-journal/internal/application/journal"
	"trade-journal/internal/application/reports"
	authDomain "trade-journal/internal/domain/auth"
	"trade-journal/internal/domain/stats"
	"trade-journal/internal/infra/memory"
	authinfra "trade-journal/internal/infrastructure/auth"
	"trade-journal/internal/infrastructure/config"
	"trade-journal/internal/infrastructure/logger"
	"trade-journal/internal/infrastructure/notify"
	"trade-journal/internal/infrastructure/persistence/postgres"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine *gin.Engine
	store  *memory.Store
	db     *sql.DB
	log    *logger.Logger

	tokenSvc *authinfra.JWTIssuer

	loginUC    *appauth.LoginUseCase
	registerUC *appauth.RegisterUseCase
	refreshUC  *appauth.RefreshUseCase
	logoutUC   *appauth.LogoutUseCase

	users        appauth.UserRepository
	repo         appjournal.Repository
	accountUC    *appjournal.AccountUseCase
	tradeUC      *appjournal.TradeUseCase
	entryUC      *appjournal.EntryUseCase
	strategyUC   *appjournal.StrategyUseCase
	screenshotUC *appjournal.ScreenshotUseCase
	dashboardUC  *reports.DashboardUseCase

	tgClient *notify.TelegramClient
	tgConfig config.TelegramConfig

	done      chan struct{}
	closeOnce sync.Once
}

// NewServer 建立 API 伺服器。db 為 nil 時改用記憶體資料庫並植入示範帳號。
func NewServer(cfg config.Config, db *sql.DB, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	store := memory.NewStore()
	var repo appjournal.Repository = store
	var users appauth.UserRepository = store
	var sessions authDomain.SessionStore = store
	if db != nil {
		pgRepo := postgres.NewRepo(db)
		authRepo := postgres.NewAuthRepo(db)
		repo = pgRepo
		users = authRepo
		sessions = authRepo
	} else {
		store.SeedUsers()
	}

	tokenTTL := cfg.Auth.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = 30 * time.Minute
	}
	refreshTTL := cfg.Auth.RefreshTTL
	if refreshTTL == 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	tokenSvc := authinfra.NewJWTIssuer(cfg.Auth.Secret, tokenTTL, refreshTTL, sessions, users)
	hasher := authinfra.BcryptHasher{}

	var tgClient *notify.TelegramClient
	if cfg.Notifier.Telegram.Enabled && cfg.Notifier.Telegram.Token != "" && cfg.Notifier.Telegram.ChatID != 0 {
		tgClient = notify.NewTelegramClient(cfg.Notifier.Telegram.Token, cfg.Notifier.Telegram.ChatID, "journal")
	}

	s := &Server{
		store:        store,
		db:           db,
		log:          log,
		tokenSvc:     tokenSvc,
		loginUC:      appauth.NewLoginUseCase(users, hasher, tokenSvc),
		registerUC:   appauth.NewRegisterUseCase(users, hasher, tokenSvc, repo),
		refreshUC:    appauth.NewRefreshUseCase(tokenSvc),
		logoutUC:     appauth.NewLogoutUseCase(tokenSvc),
		users:        users,
		repo:         repo,
		accountUC:    appjournal.NewAccountUseCase(repo),
		tradeUC:      appjournal.NewTradeUseCase(repo),
		entryUC:      appjournal.NewEntryUseCase(repo),
		strategyUC:   appjournal.NewStrategyUseCase(repo),
		screenshotUC: appjournal.NewScreenshotUseCase(repo),
		dashboardUC:  reports.NewDashboardUseCase(repo),
		tgClient:     tgClient,
		tgConfig:     cfg.Notifier.Telegram,
		done:         make(chan struct{}),
	}
	s.buildRouter()

	if s.tgClient != nil && s.tgConfig.AccountID != "" {
		go s.startDailySummaryJob()
	}
	return s
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Store 主要用於測試注入初始資料。
func (s *Server) Store() *memory.Store {
	return s.store
}

// Close 停止背景推播工作，可重複呼叫。
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Server) buildRouter() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	api := r.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/refresh", s.handleRefresh)
	api.POST("/auth/logout", s.handleLogout)

	authed := api.Group("", s.requireAuth())
	authed.GET("/auth/me", s.handleMe)

	authed.GET("/accounts", s.handleListAccounts)
	authed.POST("/accounts", s.handleCreateAccount)
	authed.PUT("/accounts/:id", s.handleRenameAccount)
	authed.DELETE("/accounts/:id", s.handleDeleteAccount)

	authed.GET("/accounts/:id/trades", s.handleListTrades)
	authed.POST("/accounts/:id/trades", s.handleCreateTrade)
	authed.PUT("/trades/:id", s.handleUpdateTrade)
	authed.DELETE("/trades/:id", s.handleDeleteTrade)

	authed.GET("/accounts/:id/entries", s.handleListEntries)
	authed.GET("/accounts/:id/entries/:date", s.handleGetEntry)
	authed.PUT("/accounts/:id/entries/:date", s.handleUpsertEntry)

	authed.GET("/accounts/:id/strategies", s.handleListStrategies)
	authed.POST("/accounts/:id/strategies", s.handleCreateStrategy)
	authed.PUT("/strategies/:id", s.handleRenameStrategy)
	authed.DELETE("/strategies/:id", s.handleDeleteStrategy)
	authed.POST("/strategies/:id/items", s.handleAddStrategyItem)
	authed.DELETE("/strategy-items/:id", s.handleDeleteStrategyItem)
	authed.GET("/accounts/:id/checklist", s.handleChecklist)
	authed.PUT("/accounts/:id/checklist", s.handleSetChecklist)

	authed.GET("/accounts/:id/screenshots", s.handleListScreenshots)
	authed.POST("/accounts/:id/screenshots", s.handleAttachScreenshot)
	authed.DELETE("/screenshots/:id", s.handleDeleteScreenshot)

	authed.GET("/accounts/:id/dashboard", s.handleDashboard)

	s.engine = r
}

// startDailySummaryJob 週期性推播前一個 session 的績效摘要。
func (s *Server) startDailySummaryJob() {
	interval := s.tgConfig.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.pushDailySummary(context.Background())
		case <-s.done:
			return
		}
	}
}

func (s *Server) pushDailySummary(ctx context.Context) {
	account, err := s.repo.GetAccount(ctx, s.tgConfig.AccountID)
	if err != nil {
		s.log.Warn("daily summary: load account", zap.Error(err))
		return
	}
	engine := stats.NewEngine()
	date := engine.CurrentSessionDate()
	report, err := s.dashboardUC.Build(ctx, account.UserID, account.ID, stats.Filter{Start: date, End: date})
	if err != nil {
		s.log.Warn("daily summary: build report", zap.Error(err))
		return
	}
	if err := s.tgClient.SendDailySummary(ctx, date, report.Summary); err != nil {
		s.log.Warn("daily summary: telegram send", zap.Error(err))
	}
}
