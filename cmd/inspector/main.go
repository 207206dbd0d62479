package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/celljam/celljam/cellmetrics"
	"github.com/celljam/celljam/cells"
	"github.com/celljam/celljam/inspect"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	addrKey     = "addr"
	tickKey     = "tick"
	logLevelKey = "log-level"
)

func main() {
	cmd := &cli.Command{
		Name:  "inspector",
		Usage: "Serve a live view of a demo cell graph",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  addrKey,
				Usage: "Address to listen on",
				Value: ":8089",
			},
			&cli.DurationFlag{
				Name:  tickKey,
				Usage: "Interval between demo writes",
				Value: 250 * time.Millisecond,
			},
			&cli.StringFlag{
				Name:  logLevelKey,
				Usage: "Log level (trace, debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: serve,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	level, err := zerolog.ParseLevel(cmd.String(logLevelKey))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "inspector").Logger().Level(level)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// demo widget graph, all owned by this goroutine
	width := cells.NewIntCell(3)
	height := cells.NewIntCell(4)
	area := cells.Computed(func(ctx *cells.Context) int {
		return width.Use(ctx) * height.Use(ctx)
	})
	label := cells.Computed(func(ctx *cells.Context) string {
		return fmt.Sprintf("%d x %d = %d", width.Use(ctx), height.Use(ctx), area.Use(ctx))
	})
	evals := cells.Stateful(0, func(ctx *cells.Context, prev int) int {
		area.Use(ctx)
		return prev + 1
	})

	rec := cellmetrics.NewRecorder()
	defer rec.Watch("width", width.Cell)()
	defer rec.Watch("height", height.Cell)()
	defer rec.Watch("area", area)()

	srv := inspect.NewServer(
		inspect.WithLogger(logger),
		inspect.WithTitle("widget inspector"),
		inspect.WithMetricsHandler(rec.Handler()),
	)
	defer srv.Close()
	inspect.Watch(srv, "width", width)
	inspect.Watch(srv, "height", height)
	inspect.Watch(srv, "area", area)
	inspect.Watch(srv, "label", label)
	inspect.Watch(srv, "evals", evals)
	srv.Flush()

	addr := cmd.String(addrKey)
	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("inspector listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ticker := time.NewTicker(cmd.Duration(tickKey))
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		case <-ticker.C:
			i++
			width.SetValue(3 + i%7)
			if i%3 == 0 {
				height.Inc()
			}
			if i%30 == 0 {
				height.SetValue(4)
			}
			n := srv.Flush()
			logger.Trace().Int("published", n).Int("clients", srv.Clients()).Msg("flush")
		}
	}
}
