// Package cmd provides CLI command implementations.
package cmd

// Exit codes for the skelgen CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input (layout tree, config, flags).
	ExitValidationError = 2

	// ExitIOError indicates a filesystem operation failed.
	ExitIOError = 3

	// ExitNotFound indicates a layout or file was not found.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitIOError:
		return "IO Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
