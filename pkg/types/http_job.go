package types

import "time"

// JobRequest is one element of the POST /api/jobs body. Every field is always
// emitted; fields that do not apply to the trigger kind are empty or zero.
type JobRequest struct {
	UserAddress            string           `json:"user_address"`
	TaskDefinitionID       TaskDefinitionID `json:"task_definition_id"`
	StakeAmount            string           `json:"stake_amount"`
	TokenAmount            string           `json:"token_amount"`
	Priority               int              `json:"priority"`
	Security               int              `json:"security"`
	Recurring              bool             `json:"recurring"`
	TimeInterval           int64            `json:"time_interval"`
	TimeFrame              int64            `json:"time_frame"`
	TriggerChainID         string           `json:"trigger_chain_id"`
	TriggerContractAddress string           `json:"trigger_contract_address"`
	TriggerEvent           string           `json:"trigger_event"`
	ScriptIPFSUrl          string           `json:"script_ipfs_url"`
	ScriptTriggerFunction  string           `json:"script_trigger_function"`
	TargetChainID          string           `json:"target_chain_id"`
	TargetContractAddress  string           `json:"target_contract_address"`
	TargetFunction         string           `json:"target_function"`
	ArgType                ArgType          `json:"arg_type"`
	Arguments              []string         `json:"arguments"`
	ScriptTargetFunction   string           `json:"script_target_function"`
}

// CreateJobData is the Data object of a create-job response.
type CreateJobData struct {
	UserID            int64              `json:"user_id"`
	AccountBalance    string             `json:"account_balance"`
	TokenBalance      string             `json:"token_balance"`
	JobIDs            []int64            `json:"job_ids"`
	TaskDefinitionIDs []TaskDefinitionID `json:"task_definition_ids"`
	TimeFrames        []int64            `json:"time_frames"`
}

// CreateJobResponse is returned by POST /api/jobs.
type CreateJobResponse struct {
	Message string        `json:"message"`
	Data    CreateJobData `json:"Data"`
}

// UpdateJobRequest is the body of PUT /api/jobs/{id}.
type UpdateJobRequest struct {
	JobID     int64 `json:"job_id"`
	Recurring bool  `json:"recurring"`
	TimeFrame int64 `json:"time_frame"`
}

// JobData is returned by GET /api/jobs/{id}.
type JobData struct {
	JobID                  int64            `json:"job_id"`
	TaskDefinitionID       TaskDefinitionID `json:"task_definition_id"`
	UserID                 int64            `json:"user_id"`
	Priority               int              `json:"priority"`
	Security               int              `json:"security"`
	LinkJobID              int64            `json:"link_job_id"`
	ChainStatus            int              `json:"chain_status"`
	TimeFrame              int64            `json:"time_frame"`
	Recurring              bool             `json:"recurring"`
	TimeInterval           int64            `json:"time_interval"`
	TriggerChainID         string           `json:"trigger_chain_id"`
	TriggerContractAddress string           `json:"trigger_contract_address"`
	TriggerEvent           string           `json:"trigger_event"`
	ScriptIPFSUrl          string           `json:"script_ipfs_url"`
	ScriptTriggerFunction  string           `json:"script_trigger_function"`
	TargetChainID          string           `json:"target_chain_id"`
	TargetContractAddress  string           `json:"target_contract_address"`
	TargetFunction         string           `json:"target_function"`
	ArgType                ArgType          `json:"arg_type"`
	Arguments              []string         `json:"arguments"`
	ScriptTargetFunction   string           `json:"script_target_function"`
	Status                 bool             `json:"status"`
	JobCostPrediction      float64          `json:"job_cost_prediction"`
	CreatedAt              time.Time        `json:"created_at"`
	LastExecutedAt         *time.Time       `json:"last_executed_at"`
	TaskIDs                []int64          `json:"task_ids"`
}

// JobSummary is one element of GET /api/jobs/user/{address}.
type JobSummary struct {
	JobID       int64            `json:"job_id"`
	JobType     TaskDefinitionID `json:"job_type"`
	Status      bool             `json:"status"`
	ChainStatus int              `json:"chain_status"`
	LinkJobID   int64            `json:"link_job_id"`
}
