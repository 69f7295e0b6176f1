package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"btc-energy-value/internal/data"
	"btc-energy-value/internal/energy"
	"btc-energy-value/internal/logger"

	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"
)

var build = "develop"

func main() {
	log, err := logger.New("UPDATE-HISTORY")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("update", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg := struct {
		conf.Version
		Source  string        `conf:"default:https://mempool.space"`
		Period  string        `conf:"default:all"`
		Output  string        `conf:"default:data/history.json"`
		Through int           `conf:"help:last year to include or 0 for the last complete year"`
		Timeout time.Duration `conf:"default:30s"`
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "Rebuild the historical network share table from hashrate history",
		},
	}

	const prefix = "UPDATE_HISTORY"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	through := cfg.Through
	if through == 0 {
		through = time.Now().UTC().Year() - 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client := data.NewHashrateClient(cfg.Source, log)
	history, err := client.FetchHashrate(ctx, cfg.Period)
	if err != nil {
		var srcErr *data.SourceError
		if errors.As(err, &srcErr) {
			return fmt.Errorf("fetching hashrate: %s (%s)", srcErr.Message, srcErr.Code)
		}
		return fmt.Errorf("fetching hashrate: %w", err)
	}

	points := data.BuildShareTable(history.Hashrates, data.DefaultEfficiency, energy.DefaultWorld, through)
	if len(points) == 0 {
		return fmt.Errorf("no usable hashrate samples through %d", through)
	}

	file := &data.HistoryFile{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Source:    cfg.Source,
		Points:    points,
	}
	if err := data.SaveHistory(file, cfg.Output); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	first, last := points[0], points[len(points)-1]
	log.Infow("update", "status", "history written", "output", cfg.Output, "years", len(points),
		"first", first.Year, "last", last.Year, "last_share", last.Share, "last_twh", last.ElectricityTWh)
	return nil
}
