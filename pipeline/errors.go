package pipeline

import "errors"

var (
	ErrOperationFunction  = errors.New("operation functions are not supported")
	ErrInvalidDefinition  = errors.New("invalid transform definition")
	ErrMissingTransformer = errors.New("no transformer id was given")
	ErrNoTransformers     = errors.New("no transformers were supplied in options")
	ErrUnknownTransformer = errors.New("transformer is not registered")
	ErrApplyMissingID     = errors.New("apply operation was given no pipeline id")
	ErrApplyNoPipelines   = errors.New("apply operation used without named pipelines in options")
	ErrApplyUnknownID     = errors.New("apply operation refers to an unknown pipeline")

	// ErrPipelineNotFound is returned at run time when a pipeline checked by
	// Prepare is missing from the state. It means the state was not built
	// from the same Prepared value.
	ErrPipelineNotFound = errors.New("pipeline does not exist")
)
