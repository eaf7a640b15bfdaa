// Command blockfall-server serves games over WebSocket. Every connection on /ws gets its own
// engine; clients send commands and receive the field whenever it changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/blockfall/internal/host"
	"github.com/plus3/blockfall/transport/ws"
	"go.uber.org/zap"
)

func main() {
	flags := host.RegisterFlags(flag.CommandLine)
	addr := flag.String("addr", ":8080", "Address to listen on.")
	interval := flag.Duration("interval", 16*time.Millisecond, "How often each session's engine is stepped.")
	flag.Parse()

	logger, err := flags.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-server: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := flags.Settings()
	if err != nil {
		logger.Fatal("load settings", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", ws.NewServer(settings, *interval, logger.Named("ws")).Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", *addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
	logger.Info("stopped")
}
