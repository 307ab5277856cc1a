package sim

import "fmt"

// ValidationError reports malformed input. The simulation never starts:
// validation runs before any working state is created, so a failed call
// leaves nothing partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// UnknownPolicyError reports an unrecognized policy ID. Kind is
// "scheduling" or "replacement".
type UnknownPolicyError struct {
	Kind string
	ID   string
}

func (e UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown %s policy %q", e.Kind, e.ID)
}
