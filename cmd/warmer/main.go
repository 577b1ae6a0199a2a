package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"stockdeck-api/internal/cli"
	"stockdeck-api/internal/config"
	"stockdeck-api/internal/svc"
	"stockdeck-api/pkg/market"
)

const (
	indicesInterval = 1 * time.Minute  // index and news refresh interval
	quoteInterval   = 2 * time.Minute  // per-symbol quote refresh interval
	callTimeout     = 10 * time.Second // budget for one warm call
	shutdownTimeout = 10 * time.Second // grace period for shutdown
)

var warmedSymbols = []string{"AAPL", "MSFT", "GOOGL"}

var configFile = flag.String("f", "etc/stockdeck.yaml", "the config file")

// The warmer keeps the Redis response cache hot so API requests rarely pay
// the upstream round trip. Without Redis configured it degrades to a health
// probe against the provider.
func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting cache warmer...")

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("[main] Failed to load config: %v", err)
	}

	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(cfg) {
		log.Printf("  - %s", line)
	}
	log.Printf("  - Warmed Symbols: %v", warmedSymbols)
	log.Printf("  - Intervals: indices=%s, quotes=%s", indicesInterval, quoteInterval)

	svcCtx := svc.NewServiceContext(*cfg)
	if svcCtx.Cache == nil {
		log.Println("[main] Redis not configured; running as a provider health probe only")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		runIndicesWarmer(ctx, svcCtx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runQuoteWarmer(ctx, svcCtx)
	}()

	log.Println("[main] Cache warmer started. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping tasks...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("[main] All tasks stopped cleanly")
	case <-shutdownCtx.Done():
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}

	log.Println("[main] Cache warmer stopped")
}

// runIndicesWarmer refreshes the index table for every timeframe plus the
// general news feed.
func runIndicesWarmer(ctx context.Context, svcCtx *svc.ServiceContext) {
	ticker := time.NewTicker(indicesInterval)
	defer ticker.Stop()

	warmIndices(ctx, svcCtx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[indices] Stopping indices warmer")
			return
		case <-ticker.C:
			warmIndices(ctx, svcCtx)
		}
	}
}

// runQuoteWarmer refreshes quotes and symbol news for the warmed symbols.
func runQuoteWarmer(ctx context.Context, svcCtx *svc.ServiceContext) {
	ticker := time.NewTicker(quoteInterval)
	defer ticker.Stop()

	warmQuotes(ctx, svcCtx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[quotes] Stopping quote warmer")
			return
		case <-ticker.C:
			warmQuotes(ctx, svcCtx)
		}
	}
}

func warmIndices(parentCtx context.Context, svcCtx *svc.ServiceContext) {
	if parentCtx.Err() != nil {
		return
	}

	for _, tf := range market.Timeframes {
		callCtx, cancel := context.WithTimeout(parentCtx, callTimeout)
		indices, err := svcCtx.Gateway.Indices(callCtx, tf)
		cancel()
		if err != nil {
			log.Printf("[indices] Warm %s failed: %v", tf, err)
			continue
		}
		log.Printf("[indices] Warmed %s: %d indices", tf, len(indices))
	}

	callCtx, cancel := context.WithTimeout(parentCtx, callTimeout)
	defer cancel()
	items, err := svcCtx.Gateway.News(callCtx, "")
	if err != nil {
		log.Printf("[indices] Warm general news failed: %v", err)
		return
	}
	log.Printf("[indices] Warmed general news: %d items", len(items))
}

func warmQuotes(parentCtx context.Context, svcCtx *svc.ServiceContext) {
	if parentCtx.Err() != nil {
		return
	}

	for _, symbol := range warmedSymbols {
		callCtx, cancel := context.WithTimeout(parentCtx, callTimeout)
		quote, err := svcCtx.Gateway.Quote(callCtx, symbol)
		cancel()
		if err != nil {
			log.Printf("[quotes] Warm %s failed: %v", symbol, err)
			continue
		}
		log.Printf("[quotes] Warmed %s: price=%.2f change=%.2f", symbol, quote.Price, quote.Change)

		callCtx, cancel = context.WithTimeout(parentCtx, callTimeout)
		items, err := svcCtx.Gateway.News(callCtx, symbol)
		cancel()
		if err != nil {
			log.Printf("[quotes] Warm %s news failed: %v", symbol, err)
			continue
		}
		log.Printf("[quotes] Warmed %s news: %d items", symbol, len(items))
	}
}
