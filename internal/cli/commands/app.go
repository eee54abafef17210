package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/triggerx-sdk-go/internal/cli/config"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/client/triggerx"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/ipfs"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

const version = "0.1.0"

type runner struct {
	out    io.Writer
	logger logging.Logger

	newPublisher func(logger logging.Logger) (ipfs.ScriptPublisher, error)
}

// NewApp builds the triggerx command line application. Command output goes
// to out, logs go to stderr.
func NewApp(out io.Writer) *cli.App {
	return newApp(&runner{
		out:          out,
		logger:       logging.NewNoOpLogger(),
		newPublisher: defaultPublisher,
	})
}

func newApp(r *runner) *cli.App {
	return &cli.App{
		Name:    "triggerx",
		Usage:   "Create and manage TriggerX automation jobs",
		Version: version,
		Writer:  r.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file to load before reading the environment",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "development logging (debug level, console encoder)",
			},
		},
		Before: r.before,
		After:  r.after,
		Commands: []*cli.Command{
			r.createJobCommand(),
			r.getJobCommand(),
			r.listJobsCommand(),
			r.updateJobCommand(),
			r.markExecutedCommand(),
			r.deleteJobCommand(),
			r.userCommand(),
			r.pointsCommand(),
			r.publishScriptCommand(),
			r.mockServerCommand(),
		},
	}
}

func (r *runner) before(c *cli.Context) error {
	if err := config.Init(c.String("env-file")); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewZapLogger(logging.LoggerConfig{
		ProcessName:   logging.CLIProcess,
		IsDevelopment: c.Bool("dev") || config.IsDevMode(),
	})
	if err != nil {
		return err
	}
	r.logger = logger
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if zl, ok := r.logger.(*logging.ZapLogger); ok {
		_ = zl.Sync()
	}
	return nil
}

// client builds an SDK client from the loaded configuration.
func (r *runner) client() (*triggerx.Client, error) {
	if err := config.RequireAPIKey(); err != nil {
		return nil, err
	}
	return triggerx.New(triggerx.Config{
		APIKey:         config.GetAPIKey(),
		BaseURL:        config.GetAPIURL(),
		RequestTimeout: config.GetRequestTimeout(),
		MaxRetries:     config.GetMaxRetries(),
	}, r.logger)
}

func defaultPublisher(logger logging.Logger) (ipfs.ScriptPublisher, error) {
	cfg := ipfs.NewConfig(config.GetIPFSAPIURL())
	cfg.Timeout = config.GetRequestTimeout() * 3
	return ipfs.NewClient(cfg, logger)
}

func (r *runner) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

func idArg(c *cli.Context, name string) (int64, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, c.Args().First())
	}
	return id, nil
}
