package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

var ErrNotFound = errors.New("record not found")

// Store is the in-memory state behind the mock server. Users are keyed by
// lower-cased address, so lookups are case-insensitive like the real API.
type Store struct {
	mu sync.RWMutex

	nextUserID int64
	nextJobID  int64

	users      map[int64]*types.UserData
	userByAddr map[string]int64
	jobs       map[int64]*types.JobData
	points     map[string]float64
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextUserID: 1,
		nextJobID:  1,
		users:      make(map[int64]*types.UserData),
		userByAddr: make(map[string]int64),
		jobs:       make(map[int64]*types.JobData),
		points:     make(map[string]float64),
		now:        time.Now,
	}
}

// CreateJobs stores every request as a new job, creating the owning user on
// first sight. Either all requests are stored or none are.
func (s *Store) CreateJobs(reqs []types.JobRequest) (types.CreateJobData, error) {
	for i, req := range reqs {
		if req.UserAddress == "" {
			return types.CreateJobData{}, fmt.Errorf("job %d: user_address is required", i)
		}
		if !req.TaskDefinitionID.IsValid() {
			return types.CreateJobData{}, fmt.Errorf("job %d: invalid task_definition_id %d", i, req.TaskDefinitionID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := types.CreateJobData{
		JobIDs:            make([]int64, 0, len(reqs)),
		TaskDefinitionIDs: make([]types.TaskDefinitionID, 0, len(reqs)),
		TimeFrames:        make([]int64, 0, len(reqs)),
	}

	now := s.now().UTC()
	for _, req := range reqs {
		user := s.userFor(req.UserAddress, now)

		job := &types.JobData{
			JobID:                  s.nextJobID,
			TaskDefinitionID:       req.TaskDefinitionID,
			UserID:                 user.UserID,
			Priority:               req.Priority,
			Security:               req.Security,
			TimeFrame:              req.TimeFrame,
			Recurring:              req.Recurring,
			TimeInterval:           req.TimeInterval,
			TriggerChainID:         req.TriggerChainID,
			TriggerContractAddress: req.TriggerContractAddress,
			TriggerEvent:           req.TriggerEvent,
			ScriptIPFSUrl:          req.ScriptIPFSUrl,
			ScriptTriggerFunction:  req.ScriptTriggerFunction,
			TargetChainID:          req.TargetChainID,
			TargetContractAddress:  req.TargetContractAddress,
			TargetFunction:         req.TargetFunction,
			ArgType:                req.ArgType,
			Arguments:              append([]string{}, req.Arguments...),
			ScriptTargetFunction:   req.ScriptTargetFunction,
			Status:                 true,
			CreatedAt:              now,
			TaskIDs:                []int64{},
		}
		s.jobs[job.JobID] = job
		s.nextJobID++

		user.JobIDs = append(user.JobIDs, job.JobID)
		user.LastUpdatedAt = &now

		data.UserID = user.UserID
		data.AccountBalance = user.AccountBalance
		data.TokenBalance = user.TokenBalance
		data.JobIDs = append(data.JobIDs, job.JobID)
		data.TaskDefinitionIDs = append(data.TaskDefinitionIDs, job.TaskDefinitionID)
		data.TimeFrames = append(data.TimeFrames, job.TimeFrame)
	}
	return data, nil
}

func (s *Store) userFor(address string, now time.Time) *types.UserData {
	key := strings.ToLower(address)
	if id, ok := s.userByAddr[key]; ok {
		return s.users[id]
	}
	user := &types.UserData{
		UserID:         s.nextUserID,
		UserAddress:    address,
		CreatedAt:      &now,
		JobIDs:         []int64{},
		AccountBalance: "0",
		TokenBalance:   "0",
	}
	s.users[user.UserID] = user
	s.userByAddr[key] = user.UserID
	s.nextUserID++
	return user
}

func (s *Store) Job(id int64) (types.JobData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return types.JobData{}, ErrNotFound
	}
	return copyJob(job), nil
}

func (s *Store) UpdateJob(id int64, update types.UpdateJobRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Recurring = update.Recurring
	job.TimeFrame = update.TimeFrame
	return nil
}

func (s *Store) MarkExecuted(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	now := s.now().UTC()
	job.LastExecutedAt = &now
	return nil
}

// DeleteJob soft-deletes: the job stays readable with Status false.
func (s *Store) DeleteJob(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	job.Status = false
	return nil
}

// JobsByUser returns the summaries of every job owned by address, oldest first.
func (s *Store) JobsByUser(address string) ([]types.JobSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByAddr[strings.ToLower(address)]
	if !ok {
		return nil, ErrNotFound
	}

	user := s.users[id]
	summaries := make([]types.JobSummary, 0, len(user.JobIDs))
	for _, jobID := range user.JobIDs {
		job := s.jobs[jobID]
		summaries = append(summaries, types.JobSummary{
			JobID:       job.JobID,
			JobType:     job.TaskDefinitionID,
			Status:      job.Status,
			ChainStatus: job.ChainStatus,
			LinkJobID:   job.LinkJobID,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].JobID < summaries[j].JobID })
	return summaries, nil
}

func (s *Store) User(id int64) (types.UserData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return types.UserData{}, ErrNotFound
	}
	out := *user
	out.JobIDs = append([]int64{}, user.JobIDs...)
	return out, nil
}

// SetPoints seeds the points balance of a wallet.
func (s *Store) SetPoints(address string, points float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[strings.ToLower(address)] = points
}

// Points returns 0 for unknown wallets.
func (s *Store) Points(address string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points[strings.ToLower(address)]
}

func copyJob(job *types.JobData) types.JobData {
	out := *job
	out.Arguments = append([]string{}, job.Arguments...)
	out.TaskIDs = append([]int64{}, job.TaskIDs...)
	if job.LastExecutedAt != nil {
		t := *job.LastExecutedAt
		out.LastExecutedAt = &t
	}
	return out
}
