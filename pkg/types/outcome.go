package types

import "fmt"

// OutcomeKind classifies the result of a single strategy attempt.
type OutcomeKind int

const (
	// Success means the strategy installed the font; the chain stops.
	Success OutcomeKind = iota

	// RecoverableFailure means this strategy failed but a later one
	// may still succeed.
	RecoverableFailure

	// FatalFailure means this strategy can never succeed for this
	// file (e.g. a missing privilege), but other strategies have
	// independent privilege paths and are still tried.
	FatalFailure
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case RecoverableFailure:
		return "recoverable"
	case FatalFailure:
		return "fatal"
	default:
		return "unknown"
	}
}

// Outcome is the uniform result of one strategy attempt.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Reason string      `json:"reason,omitempty"`
}

// Succeeded returns a Success outcome
func Succeeded() Outcome {
	return Outcome{Kind: Success}
}

// Recoverable returns a RecoverableFailure outcome with the given reason
func Recoverable(reason string) Outcome {
	return Outcome{Kind: RecoverableFailure, Reason: reason}
}

// Fatal returns a FatalFailure outcome with the given reason
func Fatal(reason string) Outcome {
	return Outcome{Kind: FatalFailure, Reason: reason}
}

// OK reports whether the outcome is a success
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// InstallationAttempt records one strategy invocation and its outcome.
// Attempts are only retained when the file ultimately fails, for
// diagnostics.
type InstallationAttempt struct {
	Strategy string  `json:"strategy"`
	Outcome  Outcome `json:"outcome"`
}

// String renders the attempt as "strategy: reason"
func (a InstallationAttempt) String() string {
	if a.Outcome.Reason == "" {
		return fmt.Sprintf("%s: %s", a.Strategy, a.Outcome.Kind)
	}
	return fmt.Sprintf("%s: %s", a.Strategy, a.Outcome.Reason)
}
