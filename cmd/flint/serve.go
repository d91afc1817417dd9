package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/flintlabs/flint/config"
	"github.com/flintlabs/flint/http"
	"github.com/flintlabs/flint/telemetry"
	"github.com/urfave/cli/v2"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "run the demo echo server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Aliases: []string{"l"},
			Usage:   "listen address, overrides config",
			EnvVars: []string{"FLINT_SERVER_ADDR"},
		},
	},
	Action: runServe,
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	router := http.NewRouter().
		AddEndpoint("/", http.MethodGet, hello).
		AddEndpoint("/echo", http.MethodPost, echo)

	srv := http.NewServer(router)
	srv.ReadTimeout = cfg.Server.ReadTimeout
	srv.WriteTimeout = cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx, cfg.Server.Addr)
	}()
	log.Printf("listening on %s", cfg.Server.Addr)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func hello(*http.Request) http.Response {
	return http.Response{
		Status: http.StatusOK,
		Body:   `{"Hello,": " World!"}`,
	}
}

// echo mirrors the request's headers and renders the whole request frame as
// the body.
func echo(req *http.Request) http.Response {
	return http.Response{
		Status:  http.StatusOK,
		Headers: req.Headers,
		Body:    string(req.Encode()),
	}
}
