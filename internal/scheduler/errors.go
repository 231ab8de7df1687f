package scheduler

import "errors"

var (
	ErrNoTasks            = errors.New("no tasks to enqueue")
	ErrMissingSession     = errors.New("task has no session")
	ErrUnknownSpecialist  = errors.New("no specialist registered for task type")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrDuplicateTask      = errors.New("task id already scheduled")
	ErrTaskTimeout        = errors.New("task timed out")
	ErrSpecialistPanic    = errors.New("specialist panicked")
	ErrDependencyFailed   = errors.New("dependency failed")
	ErrInvalidDepPolicy   = errors.New("invalid dependency policy")
	ErrInvalidConcurrency = errors.New("max concurrency must be positive")
)
