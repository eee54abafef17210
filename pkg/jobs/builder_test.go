package jobs

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

const (
	userAddress   = "0x1234567890123456789012345678901234567890"
	targetAddress = "0x4567890123456789012345678901234567890123"
	sourceAddress = "0x7890123456789012345678901234567890123456"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedBuilder() *Builder {
	return NewBuilder(WithClock(func() time.Time { return fixedNow }))
}

func baseIntent(trigger types.Trigger, task types.TaskKind) types.JobIntent {
	return types.JobIntent{
		UserAddress: userAddress,
		TaskKind:    task,
		Trigger:     trigger,
		Target: types.Target{
			ChainID:         "11155420",
			ContractAddress: targetAddress,
			Function:        "execute",
			Arguments:       []string{"1000000000000000000"},
		},
	}
}

func script() types.ScriptRef {
	return types.ScriptRef{
		IPFSURL:         "ipfs://QmScript",
		TriggerFunction: "checkPrice",
		TargetFunction:  "computeArgs",
	}
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %T", err)
	assert.Equal(t, field, vErr.Field)
}

func TestBuildTimeBased_StaticComplete_ProducesRequest(t *testing.T) {
	intent := baseIntent(types.TimeTrigger{Interval: 3600}, types.TaskStatic)

	req, err := fixedBuilder().BuildTimeBased(intent)
	require.NoError(t, err)

	assert.Equal(t, types.TaskDefTimeStatic, req.TaskDefinitionID)
	assert.Equal(t, int64(3600), req.TimeInterval)
	assert.Equal(t, fixedNow.Unix(), req.TimeFrame)
	assert.Equal(t, "11155420", req.TriggerChainID)
	assert.Equal(t, targetAddress, req.TriggerContractAddress)
	assert.Empty(t, req.TriggerEvent)
	assert.Equal(t, types.ArgTypeStatic, req.ArgType)
	assert.Equal(t, []string{"1000000000000000000"}, req.Arguments)
}

func TestBuildTimeBased_StartTimeProvided_UsedAsTimeFrame(t *testing.T) {
	intent := baseIntent(types.TimeTrigger{Interval: 60, StartTime: types.Int64(1700000000)}, types.TaskStatic)

	req, err := fixedBuilder().BuildTimeBased(intent)
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), req.TimeFrame)
}

func TestBuildTimeBased_Dynamic_CarriesScript(t *testing.T) {
	intent := baseIntent(types.TimeTrigger{Interval: 60}, types.TaskDynamic)
	intent.Target.Arguments = nil
	intent.Script = script()

	req, err := fixedBuilder().BuildTimeBased(intent)
	require.NoError(t, err)

	assert.Equal(t, types.TaskDefTimeDynamic, req.TaskDefinitionID)
	assert.Equal(t, "ipfs://QmScript", req.ScriptIPFSUrl)
	assert.Equal(t, "checkPrice", req.ScriptTriggerFunction)
	assert.Equal(t, "computeArgs", req.ScriptTargetFunction)
	assert.Equal(t, types.ArgTypeDynamic, req.ArgType)
	assert.NotNil(t, req.Arguments)
	assert.Empty(t, req.Arguments)
}

func TestBuildTimeBased_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(i *types.JobIntent)
		field  string
	}{
		{
			name:   "missing interval",
			mutate: func(i *types.JobIntent) { i.Trigger = types.TimeTrigger{} },
			field:  "time_interval",
		},
		{
			name:   "dynamic without script",
			mutate: func(i *types.JobIntent) { i.TaskKind = types.TaskDynamic },
			field:  "script_ipfs_url",
		},
		{
			name: "dynamic without trigger function",
			mutate: func(i *types.JobIntent) {
				i.TaskKind = types.TaskDynamic
				i.Script = types.ScriptRef{IPFSURL: "ipfs://QmScript"}
			},
			field: "script_trigger_function",
		},
		{
			name:   "static without arguments",
			mutate: func(i *types.JobIntent) { i.Target.Arguments = nil },
			field:  "arguments",
		},
		{
			name:   "missing user",
			mutate: func(i *types.JobIntent) { i.UserAddress = "" },
			field:  "user_address",
		},
		{
			name:   "missing target function",
			mutate: func(i *types.JobIntent) { i.Target.Function = "" },
			field:  "target_function",
		},
		{
			name:   "unknown task kind",
			mutate: func(i *types.JobIntent) { i.TaskKind = 0 },
			field:  "task_kind",
		},
		{
			name:   "wrong trigger",
			mutate: func(i *types.JobIntent) { i.Trigger = types.ConditionTrigger{} },
			field:  "trigger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic)
			tt.mutate(&intent)

			_, err := fixedBuilder().BuildTimeBased(intent)
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestBuildEventBased_TransferEvent_PopulatesEventFields(t *testing.T) {
	intent := baseIntent(types.EventTrigger{
		ChainID:         "84532",
		ContractAddress: sourceAddress,
		EventName:       "Transfer",
	}, types.TaskStatic)

	req, err := fixedBuilder().BuildEventBased(intent)
	require.NoError(t, err)

	assert.Equal(t, types.TaskDefEventStatic, req.TaskDefinitionID)
	assert.Equal(t, "Transfer", req.TriggerEvent)
	assert.Equal(t, int64(0), req.TimeInterval)
	assert.Equal(t, "84532", req.TriggerChainID)
	assert.Equal(t, sourceAddress, req.TriggerContractAddress)
	assert.Equal(t, "11155420", req.TargetChainID)
	assert.Equal(t, fixedNow.Unix(), req.TimeFrame)
}

func TestBuildEventBased_DynamicResolvesTaskDefinitionSix(t *testing.T) {
	intent := baseIntent(types.EventTrigger{ChainID: "1", ContractAddress: sourceAddress, EventName: "Transfer"}, types.TaskDynamic)
	intent.Script = script()

	req, err := fixedBuilder().Build(intent)
	require.NoError(t, err)

	assert.Equal(t, types.TaskDefinitionID(6), req.TaskDefinitionID)
}

func TestBuildEventBased_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		trigger types.EventTrigger
		task    types.TaskKind
		field   string
	}{
		{"missing chain", types.EventTrigger{ContractAddress: sourceAddress, EventName: "Transfer"}, types.TaskStatic, "trigger_chain_id"},
		{"missing contract", types.EventTrigger{ChainID: "1", EventName: "Transfer"}, types.TaskStatic, "trigger_contract_address"},
		{"missing event", types.EventTrigger{ChainID: "1", ContractAddress: sourceAddress}, types.TaskStatic, "trigger_event"},
		{"dynamic without script", types.EventTrigger{ChainID: "1", ContractAddress: sourceAddress, EventName: "Transfer"}, types.TaskDynamic, "script_ipfs_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixedBuilder().BuildEventBased(baseIntent(tt.trigger, tt.task))
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestBuildConditionBased_RequiresScriptForBothTaskKinds(t *testing.T) {
	for _, task := range []types.TaskKind{types.TaskStatic, types.TaskDynamic} {
		t.Run(task.String(), func(t *testing.T) {
			intent := baseIntent(types.ConditionTrigger{}, task)

			_, err := fixedBuilder().BuildConditionBased(intent)
			requireValidationError(t, err, "script_ipfs_url")

			intent.Script = types.ScriptRef{IPFSURL: "ipfs://QmScript"}
			_, err = fixedBuilder().BuildConditionBased(intent)
			requireValidationError(t, err, "script_trigger_function")
		})
	}
}

func TestBuild_StaticWithoutArguments_RejectsForEveryTrigger(t *testing.T) {
	tests := []struct {
		name    string
		trigger types.Trigger
		script  types.ScriptRef
	}{
		{"time", types.TimeTrigger{Interval: 60}, types.ScriptRef{}},
		{"event", types.EventTrigger{ChainID: "1", ContractAddress: sourceAddress, EventName: "Transfer"}, types.ScriptRef{}},
		{"condition with complete script", types.ConditionTrigger{}, script()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := baseIntent(tt.trigger, types.TaskStatic)
			intent.Script = tt.script
			intent.Target.Arguments = nil

			_, err := fixedBuilder().Build(intent)
			requireValidationError(t, err, "arguments")
		})
	}
}

func TestBuildConditionBased_Complete_ProducesRequest(t *testing.T) {
	tests := []struct {
		task     types.TaskKind
		expected types.TaskDefinitionID
	}{
		{types.TaskStatic, types.TaskDefConditionStatic},
		{types.TaskDynamic, types.TaskDefConditionDynamic},
	}

	for _, tt := range tests {
		t.Run(tt.task.String(), func(t *testing.T) {
			intent := baseIntent(types.ConditionTrigger{}, tt.task)
			intent.Script = script()

			req, err := fixedBuilder().BuildConditionBased(intent)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, req.TaskDefinitionID)
			assert.Equal(t, "checkPrice", req.ScriptTriggerFunction)
			assert.Equal(t, int64(0), req.TimeInterval)
			assert.Empty(t, req.TriggerEvent)
			assert.Equal(t, targetAddress, req.TriggerContractAddress)
		})
	}
}

func TestBuild_NoTrigger_ReturnsValidationError(t *testing.T) {
	_, err := fixedBuilder().Build(baseIntent(nil, types.TaskStatic))
	requireValidationError(t, err, "trigger")

	var nilTime *types.TimeTrigger
	_, err = fixedBuilder().Build(baseIntent(nilTime, types.TaskStatic))
	requireValidationError(t, err, "trigger")
}

func TestBuild_PointerTrigger_IsAccepted(t *testing.T) {
	req, err := fixedBuilder().Build(baseIntent(&types.TimeTrigger{Interval: 120}, types.TaskStatic))
	require.NoError(t, err)
	assert.Equal(t, int64(120), req.TimeInterval)
}

func TestBuild_UnsetOptions_ApplyDefaults(t *testing.T) {
	req, err := fixedBuilder().Build(baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic))
	require.NoError(t, err)

	assert.Equal(t, 1, req.Priority)
	assert.Equal(t, 1, req.Security)
	assert.True(t, req.Recurring)
	assert.Equal(t, "0", req.StakeAmount)
	assert.Equal(t, "0", req.TokenAmount)
}

func TestBuild_ExplicitOptions_OverrideDefaults(t *testing.T) {
	intent := baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic)
	intent.Options = types.JobOptions{
		Priority:    types.Int(2),
		Security:    types.Int(3),
		Recurring:   types.Bool(false),
		StakeAmount: types.String("1000000000000000000"),
		TokenAmount: types.String(""),
	}

	req, err := fixedBuilder().Build(intent)
	require.NoError(t, err)

	assert.Equal(t, 2, req.Priority)
	assert.Equal(t, 3, req.Security)
	assert.False(t, req.Recurring)
	assert.Equal(t, "1000000000000000000", req.StakeAmount)
	assert.Equal(t, "0", req.TokenAmount)
}

func TestBuild_SameIntentTwice_IdenticalExceptTimeFrame(t *testing.T) {
	builder := NewBuilder()
	intent := baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic)

	before := time.Now().Unix()
	first, err := builder.Build(intent)
	require.NoError(t, err)
	second, err := builder.Build(intent)
	require.NoError(t, err)
	after := time.Now().Unix()

	assert.GreaterOrEqual(t, first.TimeFrame, before)
	assert.LessOrEqual(t, second.TimeFrame, after)
	assert.InDelta(t, first.TimeFrame, second.TimeFrame, 1)

	second.TimeFrame = first.TimeFrame
	assert.Equal(t, first, second)
}

func TestBuild_ArgumentsAreCopied(t *testing.T) {
	intent := baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic)

	req, err := fixedBuilder().Build(intent)
	require.NoError(t, err)

	intent.Target.Arguments[0] = "mutated"
	assert.Equal(t, "1000000000000000000", req.Arguments[0])
}

func TestBuild_WireShape_EmitsEveryField(t *testing.T) {
	req, err := fixedBuilder().Build(baseIntent(types.TimeTrigger{Interval: 60}, types.TaskStatic))
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"user_address", "task_definition_id", "stake_amount", "token_amount",
		"priority", "security", "recurring", "time_interval", "time_frame",
		"trigger_chain_id", "trigger_contract_address", "trigger_event",
		"script_ipfs_url", "script_trigger_function",
		"target_chain_id", "target_contract_address", "target_function",
		"arg_type", "arguments", "script_target_function",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 20)
	assert.Equal(t, "", fields["trigger_event"])
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "missing required field trigger_event", (&ValidationError{Field: "trigger_event"}).Error())
	assert.Equal(t,
		"missing required field arguments: static tasks need literal arguments",
		(&ValidationError{Field: "arguments", Reason: "static tasks need literal arguments"}).Error())
}
