// Package jobs turns a JobIntent into the fixed-shape JobRequest the TriggerX
// API accepts. It performs no I/O.
package jobs

import (
	"time"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

// Builder validates job intents and fills in defaults.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	now func() time.Time
}

type Option func(*Builder)

// WithClock replaces the clock used for time_frame defaults.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build dispatches on the intent's trigger kind.
func (b *Builder) Build(intent types.JobIntent) (types.JobRequest, error) {
	switch intent.Trigger.(type) {
	case types.TimeTrigger, *types.TimeTrigger:
		return b.BuildTimeBased(intent)
	case types.EventTrigger, *types.EventTrigger:
		return b.BuildEventBased(intent)
	case types.ConditionTrigger, *types.ConditionTrigger:
		return b.BuildConditionBased(intent)
	default:
		return types.JobRequest{}, missing("trigger", "intent has no trigger")
	}
}

// BuildTimeBased requires a positive interval. The trigger address fields
// repeat the target, since a time trigger has no source of its own.
func (b *Builder) BuildTimeBased(intent types.JobIntent) (types.JobRequest, error) {
	trigger, ok := timeTrigger(intent.Trigger)
	if !ok {
		return types.JobRequest{}, missing("trigger", "time trigger expected")
	}
	if trigger.Interval <= 0 {
		return types.JobRequest{}, missing("time_interval", "time jobs need a positive interval")
	}
	if err := validateCommon(intent); err != nil {
		return types.JobRequest{}, err
	}
	if err := validateTask(intent); err != nil {
		return types.JobRequest{}, err
	}

	req := b.base(intent, types.TriggerTime)
	req.TimeInterval = trigger.Interval
	if trigger.StartTime != nil && *trigger.StartTime > 0 {
		req.TimeFrame = *trigger.StartTime
	}
	req.TriggerChainID = intent.Target.ChainID
	req.TriggerContractAddress = intent.Target.ContractAddress
	return req, nil
}

// BuildEventBased requires the watched chain, contract and event name.
func (b *Builder) BuildEventBased(intent types.JobIntent) (types.JobRequest, error) {
	trigger, ok := eventTrigger(intent.Trigger)
	if !ok {
		return types.JobRequest{}, missing("trigger", "event trigger expected")
	}
	switch {
	case trigger.ChainID == "":
		return types.JobRequest{}, missing("trigger_chain_id", "")
	case trigger.ContractAddress == "":
		return types.JobRequest{}, missing("trigger_contract_address", "")
	case trigger.EventName == "":
		return types.JobRequest{}, missing("trigger_event", "")
	}
	if err := validateCommon(intent); err != nil {
		return types.JobRequest{}, err
	}
	if err := validateTask(intent); err != nil {
		return types.JobRequest{}, err
	}

	req := b.base(intent, types.TriggerEvent)
	req.TriggerChainID = trigger.ChainID
	req.TriggerContractAddress = trigger.ContractAddress
	req.TriggerEvent = trigger.EventName
	return req, nil
}

// BuildConditionBased always requires a script: conditions are evaluated by
// the script's trigger function whatever the task kind.
//
// TODO: confirm with product that static condition jobs need a script too;
// older SDK revisions only required it for dynamic ones.
func (b *Builder) BuildConditionBased(intent types.JobIntent) (types.JobRequest, error) {
	if _, ok := conditionTrigger(intent.Trigger); !ok {
		return types.JobRequest{}, missing("trigger", "condition trigger expected")
	}
	if err := validateScript(intent.Script, "condition jobs are script-evaluated"); err != nil {
		return types.JobRequest{}, err
	}
	if err := validateCommon(intent); err != nil {
		return types.JobRequest{}, err
	}
	if err := validateTask(intent); err != nil {
		return types.JobRequest{}, err
	}

	req := b.base(intent, types.TriggerCondition)
	req.TriggerChainID = intent.Target.ChainID
	req.TriggerContractAddress = intent.Target.ContractAddress
	return req, nil
}

// base fills the fields shared by every trigger kind. Trigger-specific
// fields are left zero for the caller.
func (b *Builder) base(intent types.JobIntent, trigger types.TriggerKind) types.JobRequest {
	opts := resolveOptions(intent.Options)

	args := intent.Target.Arguments
	if args == nil {
		args = []string{}
	} else {
		args = append([]string(nil), args...)
	}

	return types.JobRequest{
		UserAddress:           intent.UserAddress,
		TaskDefinitionID:      types.ResolveTaskDefinitionID(trigger, intent.TaskKind),
		StakeAmount:           *opts.StakeAmount,
		TokenAmount:           *opts.TokenAmount,
		Priority:              *opts.Priority,
		Security:              *opts.Security,
		Recurring:             *opts.Recurring,
		TimeFrame:             b.now().Unix(),
		ScriptIPFSUrl:         intent.Script.IPFSURL,
		ScriptTriggerFunction: intent.Script.TriggerFunction,
		ScriptTargetFunction:  intent.Script.TargetFunction,
		TargetChainID:         intent.Target.ChainID,
		TargetContractAddress: intent.Target.ContractAddress,
		TargetFunction:        intent.Target.Function,
		ArgType:               types.ArgTypeFor(intent.TaskKind),
		Arguments:             args,
	}
}

func validateCommon(intent types.JobIntent) error {
	switch {
	case intent.UserAddress == "":
		return missing("user_address", "")
	case intent.Target.ChainID == "":
		return missing("target_chain_id", "")
	case intent.Target.ContractAddress == "":
		return missing("target_contract_address", "")
	case intent.Target.Function == "":
		return missing("target_function", "")
	}
	return nil
}

// validateTask applies the static/dynamic split: dynamic tasks compute their
// arguments with a script, static tasks carry them literally.
func validateTask(intent types.JobIntent) error {
	switch intent.TaskKind {
	case types.TaskDynamic:
		return validateScript(intent.Script, "dynamic tasks compute arguments with a script")
	case types.TaskStatic:
		if len(intent.Target.Arguments) == 0 {
			return missing("arguments", "static tasks need literal arguments")
		}
		return nil
	default:
		return missing("task_kind", "task kind must be static or dynamic")
	}
}

func validateScript(script types.ScriptRef, reason string) error {
	if script.IPFSURL == "" {
		return missing("script_ipfs_url", reason)
	}
	if script.TriggerFunction == "" {
		return missing("script_trigger_function", reason)
	}
	return nil
}

func timeTrigger(t types.Trigger) (types.TimeTrigger, bool) {
	switch v := t.(type) {
	case types.TimeTrigger:
		return v, true
	case *types.TimeTrigger:
		if v != nil {
			return *v, true
		}
	}
	return types.TimeTrigger{}, false
}

func eventTrigger(t types.Trigger) (types.EventTrigger, bool) {
	switch v := t.(type) {
	case types.EventTrigger:
		return v, true
	case *types.EventTrigger:
		if v != nil {
			return *v, true
		}
	}
	return types.EventTrigger{}, false
}

func conditionTrigger(t types.Trigger) (types.ConditionTrigger, bool) {
	switch v := t.(type) {
	case types.ConditionTrigger:
		return v, true
	case *types.ConditionTrigger:
		if v != nil {
			return *v, true
		}
	}
	return types.ConditionTrigger{}, false
}
