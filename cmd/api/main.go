package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-energy-value/internal/api"
	"btc-energy-value/internal/data"
	"btc-energy-value/internal/logger"
	"btc-energy-value/internal/valuation"

	"github.com/ardanlabs/conf/v3"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("BTCVAL-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:10s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			APIHost         string        `conf:"default:0.0.0.0:8080"`
			AllowedOrigins  []string      `conf:"default:*"`
			StaticDir       string        `conf:"default:./web/dist"`
			Release         bool          `conf:"default:false"`
		}
		Model struct {
			HistoryFile string `conf:"default:data/history.json"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "Bitcoin energy-value fair price API",
		},
	}

	const prefix = "BTCVAL"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Model Support

	// A missing history file leaves the table empty and every year projected.
	history, err := data.LoadHistoryTable(cfg.Model.HistoryFile)
	if err != nil {
		return fmt.Errorf("loading history %s: %w", cfg.Model.HistoryFile, err)
	}
	if last, ok := history.LastYear(); ok {
		log.Infow("startup", "status", "history loaded", "file", cfg.Model.HistoryFile, "years", len(history), "last", last)
	} else {
		log.Infow("startup", "status", "no history, projecting every year", "file", cfg.Model.HistoryFile)
	}

	// =========================================================================
	// Service Start/Stop Support

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	if cfg.Web.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.RouterConfig{
		Log:            log,
		Engine:         valuation.New(),
		History:        history,
		AllowedOrigins: cfg.Web.AllowedOrigins,
		StaticDir:      cfg.Web.StaticDir,
	})

	server := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      router,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	go func() {
		log.Infow("startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
