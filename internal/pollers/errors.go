package pollers

import (
	"fmt"

	"github.com/SiloGit/bcnotif/internal/shared/svcerrors"
)

const (
	codeConfigReloadFailed = "POL_1000"
	codeReportFailed       = "POL_9000"
	codeSnapshotSaveFailed = "POL_9001"
)

// errConfigReloadFailed returns an error when the config file cannot be
// re-read between cycles.
func errConfigReloadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewCorruptDataError(codeConfigReloadFailed, "config reload failed", fmt.Errorf("configReloadFailed: %w", cause))
}

// errReportFailed returns an error when the report sink rejects a cycle result.
func errReportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeReportFailed, fmt.Errorf("reportFailed: %w", cause))
}

// errSnapshotSaveFailed returns an error when the averages snapshot cannot be
// persisted.
func errSnapshotSaveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeSnapshotSaveFailed, fmt.Errorf("snapshotSaveFailed: %w", cause))
}
