package triggerx

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/jobs"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

const jobsPath = "/api/jobs"

// CreateJob validates intent, builds the wire request and submits it.
// Nothing is sent when validation fails.
func (c *Client) CreateJob(ctx context.Context, intent types.JobIntent) (*types.CreateJobResponse, error) {
	req, err := c.builder.Build(intent)
	if err != nil {
		return nil, c.rejected(err)
	}
	return c.submit(ctx, req)
}

// CreateTimeBasedJob is CreateJob restricted to time triggers.
func (c *Client) CreateTimeBasedJob(ctx context.Context, intent types.JobIntent) (*types.CreateJobResponse, error) {
	req, err := c.builder.BuildTimeBased(intent)
	if err != nil {
		return nil, c.rejected(err)
	}
	return c.submit(ctx, req)
}

// CreateEventBasedJob is CreateJob restricted to event triggers.
func (c *Client) CreateEventBasedJob(ctx context.Context, intent types.JobIntent) (*types.CreateJobResponse, error) {
	req, err := c.builder.BuildEventBased(intent)
	if err != nil {
		return nil, c.rejected(err)
	}
	return c.submit(ctx, req)
}

// CreateConditionBasedJob is CreateJob restricted to condition triggers.
func (c *Client) CreateConditionBasedJob(ctx context.Context, intent types.JobIntent) (*types.CreateJobResponse, error) {
	req, err := c.builder.BuildConditionBased(intent)
	if err != nil {
		return nil, c.rejected(err)
	}
	return c.submit(ctx, req)
}

// CreateJobs submits already-built requests in a single call.
func (c *Client) CreateJobs(ctx context.Context, reqs []types.JobRequest) (*types.CreateJobResponse, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no job requests to submit")
	}
	var resp types.CreateJobResponse
	if err := c.api.Post(ctx, jobsPath, reqs, &resp); err != nil {
		return nil, fmt.Errorf("failed to create jobs: %w", err)
	}
	c.logger.Info("Jobs created", "count", len(reqs), "job_ids", resp.Data.JobIDs)
	return &resp, nil
}

func (c *Client) submit(ctx context.Context, req types.JobRequest) (*types.CreateJobResponse, error) {
	c.logger.Debug("Job request built",
		"task_definition_id", req.TaskDefinitionID,
		"user_address", req.UserAddress,
		"time_frame", req.TimeFrame)
	return c.CreateJobs(ctx, []types.JobRequest{req})
}

func (c *Client) rejected(err error) error {
	var vErr *jobs.ValidationError
	if errors.As(err, &vErr) {
		ValidationFailuresTotal.WithLabelValues(vErr.Field).Inc()
	}
	c.logger.Debug("Job intent rejected", "error", err)
	return err
}

// GetJobData fetches a single job.
func (c *Client) GetJobData(ctx context.Context, jobID int64) (*types.JobData, error) {
	var job types.JobData
	if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", jobsPath, jobID), &job); err != nil {
		return nil, fmt.Errorf("failed to get job %d: %w", jobID, err)
	}
	return &job, nil
}

// UpdateJob changes the recurring flag and time frame of a job.
func (c *Client) UpdateJob(ctx context.Context, jobID int64, update types.UpdateJobRequest) error {
	if update.JobID == 0 {
		update.JobID = jobID
	}
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", jobsPath, jobID), update); err != nil {
		return fmt.Errorf("failed to update job %d: %w", jobID, err)
	}
	return nil
}

// UpdateJobLastExecuted stamps the job's last execution time server-side.
func (c *Client) UpdateJobLastExecuted(ctx context.Context, jobID int64) error {
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d/lastexecuted", jobsPath, jobID), nil); err != nil {
		return fmt.Errorf("failed to mark job %d executed: %w", jobID, err)
	}
	return nil
}

// GetJobsByUserAddress lists the jobs owned by an address.
func (c *Client) GetJobsByUserAddress(ctx context.Context, address string) ([]types.JobSummary, error) {
	if address == "" {
		return nil, fmt.Errorf("user address cannot be empty")
	}
	var summaries []types.JobSummary
	if err := c.api.Get(ctx, fmt.Sprintf("%s/user/%s", jobsPath, url.PathEscape(address)), &summaries); err != nil {
		return nil, fmt.Errorf("failed to list jobs for %s: %w", address, err)
	}
	return summaries, nil
}

// DeleteJob soft-deletes a job.
func (c *Client) DeleteJob(ctx context.Context, jobID int64) error {
	if err := c.api.Put(ctx, fmt.Sprintf("%s/delete/%d", jobsPath, jobID), nil); err != nil {
		return fmt.Errorf("failed to delete job %d: %w", jobID, err)
	}
	return nil
}
