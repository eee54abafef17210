package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/triggerx-sdk-go/internal/cli/config"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/mockapi"
)

func (r *runner) mockServerCommand() *cli.Command {
	return &cli.Command{
		Name:  "mock-server",
		Usage: "Run an in-memory TriggerX API for local development",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "listen port", Value: 9002},
			&cli.StringFlag{Name: "api-key", Usage: "accepted API key (defaults to TRIGGERX_API_KEY)"},
		},
		Action: r.runMockServer,
	}
}

func (r *runner) runMockServer(c *cli.Context) error {
	apiKey := c.String("api-key")
	if apiKey == "" {
		apiKey = config.GetAPIKey()
	}
	if apiKey == "" {
		return fmt.Errorf("an API key is required: pass --api-key or set TRIGGERX_API_KEY")
	}

	logger, err := logging.NewZapLogger(logging.LoggerConfig{
		ProcessName:   logging.MockAPIProcess,
		IsDevelopment: c.Bool("dev") || config.IsDevMode(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mockapi.NewServer(apiKey, logger).Start(ctx, fmt.Sprintf(":%d", c.Int("port")))
}
