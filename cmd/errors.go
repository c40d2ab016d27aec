package cmd

import (
	"errors"
	"fmt"

	"github.com/logdeck/logdeck-cli/apierror"
)

// describeError renders a failure for terminal users. The wording is chosen
// through the taxonomy predicates only, never from raw status or code.
func describeError(err error) string {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch {
	case apiErr.IsValidationError():
		return fmt.Sprintf("invalid input: %s", apiErr.DetailedMessage())
	case apiErr.IsNotFoundError():
		return fmt.Sprintf("not found: %s", apiErr.Message)
	case apiErr.IsServerError():
		return fmt.Sprintf("the service had a problem, try again later: %s", apiErr.Message)
	case apiErr.IsNetworkError():
		return fmt.Sprintf("could not reach the service: %s", apiErr.Message)
	default:
		return apiErr.Message
	}
}
