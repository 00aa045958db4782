package listings

import (
	"fmt"

	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
)

const (
	codeListingFetchFailed  = "LST_1000"
	codeListingBadStatus    = "LST_1001"
	codeListingParseFailed  = "LST_1002"
	codeListingNoFeedsFound = "LST_1003"
)

// errListingFetchFailed returns an error when a listing page cannot be fetched.
func errListingFetchFailed(url string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeListingFetchFailed, "listing fetch failed", fmt.Errorf("listingFetchFailed: %s: %w", url, cause))
}

// errListingBadStatus returns an error when a listing page answers with a
// non-OK status.
func errListingBadStatus(url string, status int) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeListingBadStatus, "listing fetch failed", fmt.Errorf("listingBadStatus: %s: status %d", url, status))
}

// errListingParseFailed returns an error when a listing page does not carry
// the expected markup.
func errListingParseFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewCorruptDataError(codeListingParseFailed, "listing page could not be parsed", fmt.Errorf("listingParseFailed: %w", cause))
}

// errListingNoFeedsFound returns an error when a listing page parses cleanly
// but contains no feed rows.
func errListingNoFeedsFound() *svcerrors.ServiceError {
	return svcerrors.NewCorruptDataError(codeListingNoFeedsFound, "no feeds found in listing", nil)
}

// errorCode extracts the stable code for metric labels.
func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return "unknown"
}
