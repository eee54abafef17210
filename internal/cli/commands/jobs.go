package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/trigg3rX/triggerx-sdk-go/internal/cli/jobfile"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/jobs"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/parser"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

func (r *runner) createJobCommand() *cli.Command {
	return &cli.Command{
		Name:      "create-job",
		Usage:     "Create a job from a YAML job file",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "job file", Required: true},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the request payload instead of submitting it"},
		},
		Action: r.createJob,
	}
}

func (r *runner) createJob(c *cli.Context) error {
	path := c.String("file")
	file, err := jobfile.Load(path)
	if err != nil {
		return err
	}

	if file.NeedsPublish() {
		scriptPath := file.Script.File
		if !filepath.IsAbs(scriptPath) {
			scriptPath = filepath.Join(filepath.Dir(path), scriptPath)
		}
		url, err := r.publish(scriptPath)
		if err != nil {
			return err
		}
		file.Script.IPFSURL = url
	}

	intent, err := file.Intent()
	if err != nil {
		return err
	}
	if jobfile.UnusedScript(intent) {
		r.logger.Warn("Script is not used by static time or event jobs", "file", path)
	}

	if c.Bool("dry-run") {
		req, err := jobs.NewBuilder().Build(intent)
		if err != nil {
			return err
		}
		r.logNextExecution(req)
		return r.printJSON([]types.JobRequest{req})
	}

	client, err := r.client()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.CreateJob(c.Context, intent)
	if err != nil {
		return err
	}
	return r.printJSON(resp)
}

func (r *runner) logNextExecution(req types.JobRequest) {
	if req.TimeInterval <= 0 {
		return
	}
	next, err := parser.CalculateNextExecutionTime(time.Unix(req.TimeFrame, 0).UTC(), parser.ScheduleInterval, req.TimeInterval, "")
	if err != nil {
		return
	}
	r.logger.Info("Job schedule", "first_run", time.Unix(req.TimeFrame, 0).UTC(), "next_run", next)
}

func (r *runner) getJobCommand() *cli.Command {
	return &cli.Command{
		Name:      "get-job",
		Usage:     "Show a job",
		ArgsUsage: "JOB_ID",
		Action: func(c *cli.Context) error {
			id, err := idArg(c, "job id")
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			job, err := client.GetJobData(c.Context, id)
			if err != nil {
				return err
			}
			return r.printJSON(job)
		},
	}
}

func (r *runner) listJobsCommand() *cli.Command {
	return &cli.Command{
		Name:      "list-jobs",
		Usage:     "List the jobs owned by an address",
		ArgsUsage: "ADDRESS",
		Action: func(c *cli.Context) error {
			address, err := jobfile.ValidateAddress(c.Args().First())
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			summaries, err := client.GetJobsByUserAddress(c.Context, address)
			if err != nil {
				return err
			}
			return r.printJSON(summaries)
		},
	}
}

func (r *runner) updateJobCommand() *cli.Command {
	return &cli.Command{
		Name:      "update-job",
		Usage:     "Change a job's recurring flag and time frame",
		ArgsUsage: "JOB_ID",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "recurring", Usage: "whether the job repeats"},
			&cli.Int64Flag{Name: "time-frame", Usage: "job time frame in seconds", Required: true},
		},
		Action: func(c *cli.Context) error {
			id, err := idArg(c, "job id")
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			update := types.UpdateJobRequest{
				JobID:     id,
				Recurring: c.Bool("recurring"),
				TimeFrame: c.Int64("time-frame"),
			}
			if err := client.UpdateJob(c.Context, id, update); err != nil {
				return err
			}
			_, err = fmt.Fprintf(r.out, "job %d updated\n", id)
			return err
		},
	}
}

func (r *runner) markExecutedCommand() *cli.Command {
	return &cli.Command{
		Name:      "mark-executed",
		Usage:     "Record that a job has just executed",
		ArgsUsage: "JOB_ID",
		Action: func(c *cli.Context) error {
			id, err := idArg(c, "job id")
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.UpdateJobLastExecuted(c.Context, id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(r.out, "job %d marked executed\n", id)
			return err
		},
	}
}

func (r *runner) deleteJobCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete-job",
		Usage:     "Delete a job",
		ArgsUsage: "JOB_ID",
		Action: func(c *cli.Context) error {
			id, err := idArg(c, "job id")
			if err != nil {
				return err
			}
			client, err := r.client()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.DeleteJob(c.Context, id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(r.out, "job %d deleted\n", id)
			return err
		},
	}
}

func (r *runner) publish(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	publisher, err := r.newPublisher(r.logger)
	if err != nil {
		return "", err
	}
	return publisher.Publish(filepath.Base(path), data)
}
