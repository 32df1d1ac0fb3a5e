package domain

import "errors"

var (
	ErrValidation      = errors.New("brandName and userId are required")
	ErrProjectCreate   = errors.New("project creation failed")
	ErrGenerationCall  = errors.New("generation call failed")
	ErrGenerationParse = errors.New("generation output malformed")
	ErrKitSave         = errors.New("saving brand kit failed")
	ErrKitsRead        = errors.New("fetching brand kits failed")
	ErrUnknownProfile  = errors.New("unknown generation profile")
)

// PipelineError ties a failure to the pipeline stage that produced it.
// Unwrap exposes both the stage sentinel and the underlying cause to errors.Is.
type PipelineError struct {
	Stage error
	Err   error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return e.Stage.Error()
	}
	return e.Stage.Error() + ": " + e.Err.Error()
}

func (e *PipelineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Stage}
	}
	return []error{e.Stage, e.Err}
}

// Fail wraps err as a failure of the given stage.
func Fail(stage, err error) error {
	return &PipelineError{Stage: stage, Err: err}
}
