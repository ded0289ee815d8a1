// Package app defines the runtime contract of the cmd/ramp-server binary.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
