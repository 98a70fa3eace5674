package runner

// State is a step of a run.
type State string

const (
	StateIdle          State = "idle"
	StateConnected     State = "connected"
	StateStripped      State = "stripped"
	StateSplit         State = "split"
	StateExecuting     State = "executing"
	StateExecuted      State = "executed"
	StateVerifying     State = "verifying"
	StateDone          State = "done"
	StateConnectFailed State = "connect_failed"
	StateCancelled     State = "cancelled"
)
