// README: Entry point; loads config and tariffs, wires the settlement
// service and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pedelogo/internal/config"
	httptransport "pedelogo/internal/http"
	"pedelogo/internal/infra"
	"pedelogo/internal/maps"
	"pedelogo/internal/modules/settlement"
	"pedelogo/internal/tariff"
)

const cacheTTL = 24 * time.Hour

var rootCmd = &cobra.Command{
	Use:   "pedelogo-api",
	Short: "Order financial settlement service",
	Long:  `pedelogo-api settles confirmed food-delivery orders: it splits each order's money between customer charge, restaurant payout, courier payout and platform revenue, persists the result and serves quotes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().String("addr", "", "HTTP listen address (overrides PEDELOGO_HTTP_ADDR)")
	rootCmd.Flags().String("tariff", "", "tariff file path (overrides PEDELOGO_TARIFF_FILE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("addr"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v, _ := cmd.Flags().GetString("tariff"); v != "" {
		cfg.Tariff.File = v
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tariffs, err := tariff.Load(cfg.Tariff.File)
	if err != nil {
		return err
	}
	// A regional deployment pins its region's tariff as the default, so
	// requests without a region still settle on the right rates.
	if cfg.Tariff.DefaultRegion != "" {
		tariffs.Default = tariffs.For(cfg.Tariff.DefaultRegion)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	store := settlement.NewStore(dbPool)
	cache := settlement.NewRedisCache(redisClient, cacheTTL)

	var events settlement.Publisher
	if cfg.Kafka.Enabled {
		writer := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer writer.Close()
		events = settlement.NewKafkaPublisher(writer)
	}

	var geocoder *maps.Geocoder
	if cfg.Maps.APIKey != "" {
		geocoder, err = maps.NewGeocoder(cfg.Maps.APIKey)
		if err != nil {
			return fmt.Errorf("maps init: %w", err)
		}
	}

	svc := settlement.NewService(store, cache, events, tariffs)
	router := httptransport.NewRouter(svc, geocoder)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
