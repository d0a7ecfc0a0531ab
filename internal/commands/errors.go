package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes let hosts match command failures without string comparison.
const (
	codeValidationFailed = "COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	codeContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	codeContextError     = "COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	msg, code := "command context error", codeContextError
	switch {
	case errors.Is(err, context.Canceled):
		msg, code = "command execution cancelled", codeContextCanceled
	case errors.Is(err, context.DeadlineExceeded):
		msg, code = "command execution deadline exceeded", codeContextTimeout
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(codeExecutionFailed)
}
