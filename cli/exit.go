package cli

import "fmt"

const (
	exitValidation = 1
	exitRuntime    = 2
	exitConfig     = 3
)

// ExitError carries the process exit code a failed command should produce.
// main unwraps it with errors.As and hands Code to os.Exit; any other error
// exits 1.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError builds an ExitError from a formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
