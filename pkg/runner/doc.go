// Package runner drives a complete setup run against a warehouse.
//
// A run moves through these states:
//
//	Idle -> Connected -> Stripped -> Split -> Executing -> Executed -> Verifying -> Done
//
// with two terminal exits: ConnectFailed when the warehouse cannot be reached
// and Cancelled when a teardown confirmation is declined. The script is read
// before connecting, so a missing script never opens a connection.
//
// Verification runs only when every tracked statement succeeded. In verify-only
// mode the runner goes straight from Connected to Verifying.
package runner
