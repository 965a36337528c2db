package task

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID compatibility.
// Values are kept in sync with TaskStatus constants in task.go.
const (
	StateTodo       = "todo"
	StateInProgress = "in_progress"
	StateDone       = "done"
)

// init validates at startup that FSM state constants match TaskStatus values.
func init() {
	stateMap := map[string]TaskStatus{
		StateTodo:       StatusTodo,
		StateInProgress: StatusInProgress,
		StateDone:       StatusDone,
	}

	for fsmState, taskStatus := range stateMap {
		if fsmState != string(taskStatus) {
			panic(fmt.Sprintf("FSM state %q does not match TaskStatus %q - constants are out of sync", fsmState, taskStatus))
		}
	}
}

// FSMContext carries state data.
type FSMContext struct {
	TaskID string
}

// StateMachine defines the valid status transitions for a task.
type StateMachine struct {
	interpreter *statekit.Interpreter[FSMContext]
}

// NewStateMachine builds the todo -> in_progress -> done machine starting
// from the given status.
func NewStateMachine(initialState string, taskID string) (*StateMachine, error) {
	builder := statekit.NewMachine[FSMContext]("task-machine").
		WithInitial(statekit.StateID(initialState)).
		WithContext(FSMContext{TaskID: taskID})

	builder.State(StateTodo).
		On("start").Target(StateInProgress).
		Done()

	builder.State(StateInProgress).
		On("complete").Target(StateDone).
		On("stop").Target(StateTodo).
		Done()

	builder.State(StateDone).
		On("reopen").Target(StateTodo).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &StateMachine{interpreter: interpreter}, nil
}

// Transition attempts to move the task to a new state.
func (sm *StateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}

	return fmt.Errorf("the action '%s' is not allowed while the task is in the '%s' state", event, before)
}

func (sm *StateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as a TaskStatus value object.
func (sm *StateMachine) CurrentStatus() TaskStatus {
	return TaskStatus(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
// This delegates to the TaskStatus value object for consistency.
func (sm *StateMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}

// ValidEvents returns the valid events for the current state.
func (sm *StateMachine) ValidEvents() []string {
	return sm.CurrentStatus().ValidEvents()
}
