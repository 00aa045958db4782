package averages

import (
	"fmt"

	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
)

const (
	codeInvalidObservation = "AVG_1000"
)

// errInvalidObservation returns an error when an observation cannot be folded
// into the averages.
func errInvalidObservation(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidObservation, "observation rejected by averages blend", fmt.Errorf("invalidObservation: %w", cause))
}
