package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flintlabs/flint/config"
	"github.com/flintlabs/flint/http"
	"github.com/urfave/cli/v2"
)

var sendCmd = &cli.Command{
	Name:      "send",
	Usage:     "send one request and print the decoded response",
	ArgsUsage: "<endpoint>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   "server address, overrides config",
			EnvVars: []string{"FLINT_CLIENT_TARGET"},
		},
		&cli.StringFlag{
			Name:    "method",
			Aliases: []string{"X"},
			Usage:   "request method",
			Value:   "GET",
		},
		&cli.StringSliceFlag{
			Name:    "header",
			Aliases: []string{"H"},
			Usage:   "header as 'Key: Value', repeatable",
		},
		&cli.StringFlag{
			Name:    "body",
			Aliases: []string{"d"},
			Usage:   "request body, '-' reads stdin",
		},
	},
	Action: runSend,
}

func runSend(c *cli.Context) error {
	endpoint := c.Args().First()
	if endpoint == "" {
		return cli.Exit("missing <endpoint> argument", 2)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	target := cfg.Client.Target
	if t := c.String("target"); t != "" {
		target = t
	}

	method, err := http.ParseMethod(c.String("method"))
	if err != nil {
		return err
	}

	var headers []http.Header
	for _, raw := range c.StringSlice("header") {
		key, value, found := strings.Cut(raw, ":")
		if !found {
			return fmt.Errorf("invalid header %q, want 'Key: Value'", raw)
		}
		headers = append(headers, http.Header{
			Key:   key,
			Value: strings.TrimSpace(value),
		})
	}

	body := c.String("body")
	if body == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		body = string(data)
	}

	client := &http.Client{
		DialTimeout: cfg.Client.DialTimeout,
		ReadTimeout: cfg.Client.ReadTimeout,
	}
	req := http.Request{
		Method:   method,
		Endpoint: endpoint,
		Headers:  headers,
		Body:     body,
	}

	res, err := client.Send(&req, target)
	if err != nil {
		return err
	}

	os.Stdout.Write(res.Encode())
	if !strings.HasSuffix(res.Body, "\n") {
		fmt.Println()
	}
	return nil
}
