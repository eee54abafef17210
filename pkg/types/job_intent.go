package types

// Trigger is implemented by TimeTrigger, EventTrigger and ConditionTrigger.
type Trigger interface {
	Kind() TriggerKind
	isTrigger()
}

// TimeTrigger fires every Interval seconds, starting at StartTime (Unix
// seconds). A nil or zero StartTime means "now".
type TimeTrigger struct {
	Interval  int64
	StartTime *int64
}

// EventTrigger fires when EventName is emitted by ContractAddress on ChainID.
type EventTrigger struct {
	ChainID         string
	ContractAddress string
	EventName       string
}

// ConditionTrigger fires when the intent's script trigger function evaluates
// to true. The script itself lives on JobIntent.Script.
type ConditionTrigger struct{}

func (TimeTrigger) Kind() TriggerKind      { return TriggerTime }
func (EventTrigger) Kind() TriggerKind     { return TriggerEvent }
func (ConditionTrigger) Kind() TriggerKind { return TriggerCondition }

func (TimeTrigger) isTrigger()      {}
func (EventTrigger) isTrigger()     {}
func (ConditionTrigger) isTrigger() {}

// Target is the contract call a job executes.
type Target struct {
	ChainID         string
	ContractAddress string
	Function        string
	Arguments       []string
}

// ScriptRef points at a content-addressed script. TriggerFunction decides
// whether the job fires, TargetFunction computes dynamic arguments.
type ScriptRef struct {
	IPFSURL         string
	TriggerFunction string
	TargetFunction  string
}

// IsZero reports whether no part of the script reference was supplied.
func (s ScriptRef) IsZero() bool {
	return s.IPFSURL == "" && s.TriggerFunction == "" && s.TargetFunction == ""
}

// JobOptions enumerates every optional scheduling field. Nil means unset;
// DefaultJobOptions lists the value each one falls back to.
type JobOptions struct {
	Priority    *int
	Security    *int
	Recurring   *bool
	StakeAmount *string
	TokenAmount *string
}

const (
	DefaultPriority  = 1
	DefaultSecurity  = 1
	DefaultRecurring = true
	DefaultAmount    = "0"
)

// DefaultJobOptions returns a fully-populated JobOptions holding the defaults.
func DefaultJobOptions() JobOptions {
	return JobOptions{
		Priority:    Int(DefaultPriority),
		Security:    Int(DefaultSecurity),
		Recurring:   Bool(DefaultRecurring),
		StakeAmount: String(DefaultAmount),
		TokenAmount: String(DefaultAmount),
	}
}

// JobIntent is the caller's description of a job, before validation.
type JobIntent struct {
	UserAddress string
	TaskKind    TaskKind
	Trigger     Trigger
	Target      Target
	Script      ScriptRef
	Options     JobOptions
}

// TriggerKind returns the kind of the intent's trigger, or 0 if none is set.
func (i JobIntent) TriggerKind() TriggerKind {
	if i.Trigger == nil {
		return 0
	}
	return i.Trigger.Kind()
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
