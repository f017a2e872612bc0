package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"farmbot/config"
	"farmbot/database"
	"farmbot/pkg/ai"
	"farmbot/pkg/climate"
	"farmbot/pkg/middleware"
	"farmbot/router"

	// Farmer
	farmerCtrlImp "farmbot/pkg/farmer/controllerImp"
	farmerRepo "farmbot/pkg/farmer/repository"
	farmerRepoImp "farmbot/pkg/farmer/repositoryImp"
	farmerSvcImp "farmbot/pkg/farmer/serviceImp"

	// Chat
	chatCtrlImp "farmbot/pkg/chat/controllerImp"
	chatRepo "farmbot/pkg/chat/repository"
	chatRepoImp "farmbot/pkg/chat/repositoryImp"
	chatSvcImp "farmbot/pkg/chat/serviceImp"

	// Suggestion
	suggCtrlImp "farmbot/pkg/suggestion/controllerImp"
	suggRepo "farmbot/pkg/suggestion/repository"
	suggRepoImp "farmbot/pkg/suggestion/repositoryImp"
	suggSvcImp "farmbot/pkg/suggestion/serviceImp"

	// Weather
	weatherCtrlImp "farmbot/pkg/weather/controllerImp"
	"farmbot/pkg/weather/provider"
	weatherRepo "farmbot/pkg/weather/repository"
	weatherRepoImp "farmbot/pkg/weather/repositoryImp"
	weatherSvcImp "farmbot/pkg/weather/serviceImp"

	// Market
	marketCtrlImp "farmbot/pkg/market/controllerImp"
	marketRepo "farmbot/pkg/market/repository"
	marketRepoImp "farmbot/pkg/market/repositoryImp"
	marketSvc "farmbot/pkg/market/service"
	marketSvcImp "farmbot/pkg/market/serviceImp"
	"farmbot/pkg/market/scraper"

	// Reference + Health
	healthCtrlImp "farmbot/pkg/health/controllerImp"
	refCtrlImp "farmbot/pkg/reference/controllerImp"
)

var (
	cfg    config.AppConfig
	logger *zap.Logger

	taskCrops    []string
	taskLand     string
	taskDistrict string
	taskMonth    int
)

var rootCmd = &cobra.Command{
	Use:   "farmbot",
	Short: "FarmBot Kerala advisory API",
	Long: `FarmBot Kerala serves farmer profiles, chat answers, seasonal to-do
suggestions, district weather and market prices over a JSON API.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		zcfg := zap.NewProductionConfig()
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfg.EnvFileErr != nil {
			logger.Debug("no .env file loaded", zap.Error(cfg.EnvFileErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context()) },
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  func(cmd *cobra.Command, args []string) error { return runServe(cmd.Context()) },
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Print the rule-based season tasks as JSON",
	Long: `Prints the tasks the rules engine derives for a crop list and month,
using CROP_CALENDAR_FILE when set.

Example:
  farmbot tasks --crops rice,banana --land paddy --month 6`,
	RunE: runTasks,
}

func init() {
	tasksCmd.Flags().StringSliceVar(&taskCrops, "crops", nil, "crops to plan for (comma separated)")
	tasksCmd.Flags().StringVar(&taskLand, "land", "", "land type: paddy, upland or plantation")
	tasksCmd.Flags().StringVar(&taskDistrict, "district", "", "district name")
	tasksCmd.Flags().IntVar(&taskMonth, "month", 0, "month 1-12 (default: current month)")
	rootCmd.AddCommand(serveCmd, tasksCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadRules() climate.RulesEngine {
	if cfg.CropCalendarFile == "" {
		return climate.New(nil)
	}
	rules, err := climate.LoadFromFile(cfg.CropCalendarFile)
	if err != nil {
		logger.Warn("crop calendar not loaded, using defaults", zap.String("path", cfg.CropCalendarFile), zap.Error(err))
		return climate.New(nil)
	}
	logger.Info("crop calendar loaded", zap.String("path", cfg.CropCalendarFile), zap.Int("crops", len(rules.Calendar())))
	return rules
}

func runTasks(cmd *cobra.Command, _ []string) error {
	now := time.Now().In(cfg.Location())
	if taskMonth != 0 {
		if taskMonth < 1 || taskMonth > 12 {
			return fmt.Errorf("month must be between 1 and 12")
		}
		now = time.Date(now.Year(), time.Month(taskMonth), 1, 9, 0, 0, 0, now.Location())
	}
	tasks := loadRules().SeasonTasks(taskCrops, taskLand, taskDistrict, now)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

type storage struct {
	name       string
	farmers    farmerRepo.FarmerRepository
	chats      chatRepo.ChatRepository
	suggestion suggRepo.SuggestionRepository
	weather    weatherRepo.WeatherRepository
	market     marketRepo.MarketRepository
	pinger     healthCtrlImp.Pinger
	close      func()
}

func openStorage(ctx context.Context) (*storage, error) {
	switch strings.ToLower(cfg.Storage) {
	case "sqlite":
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return &storage{
			name:       "sqlite",
			farmers:    farmerRepoImp.NewSQLite(db),
			chats:      chatRepoImp.NewSQLite(db),
			suggestion: suggRepoImp.NewSQLite(db),
			weather:    weatherRepoImp.NewSQLite(db),
			market:     marketRepoImp.NewSQLite(db),
			pinger:     database.GormPinger{DB: db},
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("STORAGE=postgres requires DATABASE_URL")
		}
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &storage{
			name:       "postgres",
			farmers:    farmerRepoImp.NewPostgres(pool),
			chats:      chatRepoImp.NewPostgres(pool),
			suggestion: suggRepoImp.NewPostgres(pool),
			weather:    weatherRepoImp.NewPostgres(pool),
			market:     marketRepoImp.NewPostgres(pool),
			pinger:     database.PoolPinger{Pool: pool},
			close:      pool.Close,
		}, nil
	case "", "memory":
		return &storage{
			name:       "memory",
			farmers:    farmerRepoImp.NewMemory(),
			chats:      chatRepoImp.NewMemory(),
			suggestion: suggRepoImp.NewMemory(),
			weather:    weatherRepoImp.NewMemory(),
			market:     marketRepoImp.NewMemory(),
			pinger:     database.NopPinger{},
			close:      func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown STORAGE %q (want memory, sqlite or postgres)", cfg.Storage)
}

func selectLLM(ctx context.Context, rules climate.RulesEngine) ai.Client {
	switch {
	case strings.EqualFold(cfg.LLMProvider, "gemini") && cfg.GeminiKey != "":
		llm, err := ai.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err == nil {
			return llm
		}
		logger.Warn("gemini client unavailable, using mock", zap.Error(err))
	case cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "":
		return ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	}
	return ai.NewMock(rules)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }

	// 1) Storage
	st, err := openStorage(ctx)
	if err != nil {
		logger.Error("storage init failed", zap.String("storage", cfg.Storage), zap.Error(err))
		return err
	}
	defer st.close()

	// 2) Rules + LLM (mock fallback)
	rules := loadRules()
	llm := selectLLM(ctx, rules)
	logger.Info("llm selected", zap.String("provider", llm.Name()))

	// 3) Services
	suggSvc := suggSvcImp.NewSuggestionService(st.suggestion, st.farmers, llm, rules, logger, now)
	farmerSvc := farmerSvcImp.NewFarmerService(st.farmers, suggSvc, rules, logger, now)
	chatSvc := chatSvcImp.NewChatService(st.chats, st.farmers, llm, logger)
	meteo := provider.NewOpenMeteo(cfg.WeatherEndpoint, cfg.GeocodeEndpoint)
	weatherSvc := weatherSvcImp.NewWeatherService(st.weather, meteo, cfg.WeatherTTL, logger, now)
	var board marketSvc.Source
	if cfg.MarketSourceURL != "" {
		board = scraper.New(cfg.MarketSourceURL)
	}
	marketService := marketSvcImp.NewMarketService(st.market, board, logger, now)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.RequestLogger(logger))

	limiter := middleware.NewRateLimiter(cfg.ChatRatePerMin, cfg.ChatRateBurst)
	defer limiter.Close()
	r := router.New(
		e,
		limiter.Middleware(),
		farmerCtrlImp.New(farmerSvc),
		chatCtrlImp.New(chatSvc),
		suggCtrlImp.New(suggSvc),
		weatherCtrlImp.New(weatherSvc),
		marketCtrlImp.New(marketService),
		refCtrlImp.New(rules, now),
		healthCtrlImp.NewHealthCtrl(st.pinger, st.name, llm.Name()),
	)

	// 5) Start
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("storage", st.name))
		errc <- r.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.Shutdown(shutdownCtx)
}
