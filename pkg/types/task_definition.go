package types

import (
	"fmt"
	"strings"
)

// TriggerKind is the condition that causes a job to execute.
type TriggerKind int

const (
	TriggerTime TriggerKind = iota + 1
	TriggerEvent
	TriggerCondition
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerTime:
		return "TIME"
	case TriggerEvent:
		return "EVENT"
	case TriggerCondition:
		return "CONDITION"
	default:
		return fmt.Sprintf("TriggerKind(%d)", int(k))
	}
}

// ParseTriggerKind accepts TIME, EVENT or CONDITION in any case.
func ParseTriggerKind(s string) (TriggerKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TIME":
		return TriggerTime, nil
	case "EVENT":
		return TriggerEvent, nil
	case "CONDITION":
		return TriggerCondition, nil
	default:
		return 0, fmt.Errorf("unknown trigger kind %q", s)
	}
}

// TaskKind says whether job arguments are fixed at creation (Static) or
// computed at execution time by a script (Dynamic).
type TaskKind int

const (
	TaskStatic TaskKind = iota + 1
	TaskDynamic
)

func (k TaskKind) String() string {
	switch k {
	case TaskStatic:
		return "STATIC"
	case TaskDynamic:
		return "DYNAMIC"
	default:
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
}

// ParseTaskKind accepts STATIC or DYNAMIC in any case.
func ParseTaskKind(s string) (TaskKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STATIC":
		return TaskStatic, nil
	case "DYNAMIC":
		return TaskDynamic, nil
	default:
		return 0, fmt.Errorf("unknown task kind %q", s)
	}
}

// ArgType is the wire encoding of how target arguments are supplied.
type ArgType int

const (
	ArgTypeStatic  ArgType = 0
	ArgTypeDynamic ArgType = 1
)

// ArgTypeFor maps a task kind onto its wire argument type.
func ArgTypeFor(task TaskKind) ArgType {
	if task == TaskDynamic {
		return ArgTypeDynamic
	}
	return ArgTypeStatic
}

// TaskDefinitionID is the backend identifier of a (trigger, task) pair.
type TaskDefinitionID int

const (
	TaskDefTimeStatic         TaskDefinitionID = 1
	TaskDefTimeDynamic        TaskDefinitionID = 2
	TaskDefConditionStatic    TaskDefinitionID = 3
	TaskDefConditionDynamic   TaskDefinitionID = 4
	TaskDefEventStatic        TaskDefinitionID = 5
	TaskDefEventDynamic       TaskDefinitionID = 6
	minTaskDefinitionID                        = TaskDefTimeStatic
	maxTaskDefinitionID                        = TaskDefEventDynamic
)

type taskDefinitionKey struct {
	trigger TriggerKind
	task    TaskKind
}

var taskDefinitions = map[taskDefinitionKey]TaskDefinitionID{
	{TriggerTime, TaskStatic}:       TaskDefTimeStatic,
	{TriggerTime, TaskDynamic}:      TaskDefTimeDynamic,
	{TriggerCondition, TaskStatic}:  TaskDefConditionStatic,
	{TriggerCondition, TaskDynamic}: TaskDefConditionDynamic,
	{TriggerEvent, TaskStatic}:      TaskDefEventStatic,
	{TriggerEvent, TaskDynamic}:     TaskDefEventDynamic,
}

// ResolveTaskDefinitionID returns the task definition for a trigger and task
// kind. It is total over the declared kinds; anything else yields 0.
func ResolveTaskDefinitionID(trigger TriggerKind, task TaskKind) TaskDefinitionID {
	return taskDefinitions[taskDefinitionKey{trigger, task}]
}

// IsValid reports whether id is one of the six known task definitions.
func (id TaskDefinitionID) IsValid() bool {
	return id >= minTaskDefinitionID && id <= maxTaskDefinitionID
}

// Kinds is the reverse of ResolveTaskDefinitionID.
func (id TaskDefinitionID) Kinds() (TriggerKind, TaskKind, bool) {
	for key, value := range taskDefinitions {
		if value == id {
			return key.trigger, key.task, true
		}
	}
	return 0, 0, false
}

func (id TaskDefinitionID) String() string {
	trigger, task, ok := id.Kinds()
	if !ok {
		return fmt.Sprintf("TaskDefinitionID(%d)", int(id))
	}
	return fmt.Sprintf("%s/%s", trigger, task)
}
