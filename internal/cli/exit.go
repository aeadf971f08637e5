package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/cellgrid/pkg/errors"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1   // internal or unclassified failures
	ExitUsage    = 2   // rejected input: bad config, format, profile, or shape
	ExitCanceled = 130 // interrupted, following the shell convention for SIGINT
)

// ExitCode maps err to a process exit code using its error code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidProfile,
		errors.ErrCodeProfileNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeUnsupported:
		return ExitUsage
	}
	return ExitFailure
}

// ErrorMessage formats err for the terminal. Coded errors show their code
// in front of the message without repeating it in the text.
func ErrorMessage(err error) string {
	if code := errors.GetCode(err); code != "" {
		return fmt.Sprintf("%s %s", StyleWarning.Render(string(code)), errors.UserMessage(err))
	}
	return errors.UserMessage(err)
}
