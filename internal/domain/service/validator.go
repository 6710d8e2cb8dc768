package service

// CommandValidator checks the declarative constraints of a command or DTO.
// A non-nil error means the input is malformed; callers classify it as a
// validation failure.
type CommandValidator interface {
	Validate(v any) error
}
