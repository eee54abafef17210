// Package jobfile decodes YAML job descriptions into job intents.
//
//	user_address: 0x...
//	task: static
//	trigger:
//	  type: time
//	  interval: 1h
//	target:
//	  chain_id: "11155420"
//	  contract_address: 0x...
//	  function: execute
//	  arguments: ["42"]
package jobfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/parser"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/types"
)

type File struct {
	UserAddress string  `yaml:"user_address" validate:"omitempty,eth_addr"`
	Task        string  `yaml:"task" validate:"required"`
	Trigger     Trigger `yaml:"trigger"`
	Target      Target  `yaml:"target"`
	Script      Script  `yaml:"script"`
	Options     Options `yaml:"options"`
}

type Trigger struct {
	Type string `yaml:"type" validate:"required,oneof=time event condition TIME EVENT CONDITION"`

	// time
	Interval  string `yaml:"interval"`
	StartTime *int64 `yaml:"start_time" validate:"omitempty,gt=0"`

	// event
	ChainID         string `yaml:"chain_id"`
	ContractAddress string `yaml:"contract_address" validate:"omitempty,eth_addr"`
	Event           string `yaml:"event"`
}

type Target struct {
	ChainID         string   `yaml:"chain_id"`
	ContractAddress string   `yaml:"contract_address" validate:"omitempty,eth_addr"`
	Function        string   `yaml:"function"`
	Arguments       []string `yaml:"arguments"`
}

// Script references a dynamic script. File names a local script that the
// CLI publishes to IPFS when IPFSURL is empty.
type Script struct {
	IPFSURL         string `yaml:"ipfs_url"`
	File            string `yaml:"file"`
	TriggerFunction string `yaml:"trigger_function"`
	TargetFunction  string `yaml:"target_function"`
}

type Options struct {
	Priority    *int    `yaml:"priority" validate:"omitempty,min=1"`
	Security    *int    `yaml:"security" validate:"omitempty,min=1"`
	Recurring   *bool   `yaml:"recurring"`
	StakeAmount *string `yaml:"stake_amount" validate:"omitempty,numeric"`
	TokenAmount *string `yaml:"token_amount" validate:"omitempty,numeric"`
}

var validate = validator.New()

// Load reads and decodes the job file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses a job file. Unknown keys are rejected so that typos do not
// silently drop fields.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("job file is empty")
		}
		return nil, fmt.Errorf("failed to decode job file: %w", err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, describe(err)
	}
	return &file, nil
}

// NeedsPublish reports whether the script must be uploaded before the job
// can be built.
func (f *File) NeedsPublish() bool {
	return f.Script.IPFSURL == "" && f.Script.File != ""
}

// UnusedScript reports whether intent carries a script that keepers never
// run: static time and event jobs neither evaluate a condition nor compute
// arguments.
func UnusedScript(intent types.JobIntent) bool {
	if intent.Script.IsZero() || intent.TaskKind != types.TaskStatic {
		return false
	}
	kind := intent.TriggerKind()
	return kind == types.TriggerTime || kind == types.TriggerEvent
}

// Intent converts the file into a job intent. Addresses are normalized to
// their checksummed form; required-field checks are left to the builder.
func (f *File) Intent() (types.JobIntent, error) {
	task, err := types.ParseTaskKind(f.Task)
	if err != nil {
		return types.JobIntent{}, err
	}

	trigger, err := f.Trigger.toTrigger()
	if err != nil {
		return types.JobIntent{}, err
	}

	return types.JobIntent{
		UserAddress: checksum(f.UserAddress),
		TaskKind:    task,
		Trigger:     trigger,
		Target: types.Target{
			ChainID:         f.Target.ChainID,
			ContractAddress: checksum(f.Target.ContractAddress),
			Function:        f.Target.Function,
			Arguments:       f.Target.Arguments,
		},
		Script: types.ScriptRef{
			IPFSURL:         f.Script.IPFSURL,
			TriggerFunction: f.Script.TriggerFunction,
			TargetFunction:  f.Script.TargetFunction,
		},
		Options: types.JobOptions{
			Priority:    f.Options.Priority,
			Security:    f.Options.Security,
			Recurring:   f.Options.Recurring,
			StakeAmount: f.Options.StakeAmount,
			TokenAmount: f.Options.TokenAmount,
		},
	}, nil
}

func (t Trigger) toTrigger() (types.Trigger, error) {
	kind, err := types.ParseTriggerKind(t.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.TriggerTime:
		var interval int64
		if t.Interval != "" {
			interval, err = parser.ParseInterval(t.Interval)
			if err != nil {
				return nil, fmt.Errorf("trigger.interval: %w", err)
			}
		}
		return types.TimeTrigger{Interval: interval, StartTime: t.StartTime}, nil
	case types.TriggerEvent:
		return types.EventTrigger{
			ChainID:         t.ChainID,
			ContractAddress: checksum(t.ContractAddress),
			EventName:       t.Event,
		}, nil
	default:
		return types.ConditionTrigger{}, nil
	}
}

// checksum returns the EIP-55 form of a hex address; anything else is
// returned unchanged.
func checksum(address string) string {
	if !common.IsHexAddress(address) {
		return address
	}
	return common.HexToAddress(address).Hex()
}

// ValidateAddress checks a command-line address argument.
func ValidateAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%q is not a valid address", address)
	}
	return common.HexToAddress(address).Hex(), nil
}

func describe(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid job file: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("invalid job file: %s", strings.Join(msgs, "; "))
}

// fieldPath turns "File.Trigger.ContractAddress" into "Trigger.ContractAddress".
func fieldPath(namespace string) string {
	return strings.TrimPrefix(namespace, "File.")
}
