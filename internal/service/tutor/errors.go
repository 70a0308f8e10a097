package tutor

import (
	"errors"
	"fmt"

	"github.com/sandevgo/taalbot/internal/service/state"
)

var ErrUnknownCommand = errors.New("unknown command")

// ValidationError means the command could not start with the given arguments.
// The usage text is meant for the user.
type ValidationError struct {
	Usage string
}

func (e *ValidationError) Error() string {
	return "invalid arguments: " + e.Usage
}

// LostContextError is returned when free text arrives in a mode whose
// reference text is gone. The session is reset to idle.
type LostContextError struct {
	Mode   state.Mode
	Notice string
}

func (e *LostContextError) Error() string {
	return fmt.Sprintf("%s session lost its context", e.Mode)
}

// GatewayError wraps a failed model or speech call.
type GatewayError struct {
	Op     string
	Notice string
	Err    error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

const genericFailure = "An error occurred. Please try again."

// UserMessage turns an error from the controller into the notice shown to the user.
func UserMessage(err error) string {
	var validation *ValidationError
	var lost *LostContextError
	var gateway *GatewayError

	switch {
	case errors.As(err, &validation):
		return validation.Usage
	case errors.As(err, &lost):
		if lost.Notice != "" {
			return lost.Notice
		}
		return "Your session was lost. Please restart the command."
	case errors.As(err, &gateway):
		if gateway.Notice != "" {
			return gateway.Notice
		}
		return genericFailure
	case errors.Is(err, ErrUnknownCommand):
		return "Unknown command. Use /start to see what I can do."
	default:
		return genericFailure
	}
}
