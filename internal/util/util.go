package util

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FormatMultiError formats multierrors one error per line
func FormatMultiError(merrs []error) string {
	lines := make([]string, len(merrs))
	for i := 0; i < len(merrs); i++ {
		lines[i] = merrs[i].Error()
	}
	return strings.Join(lines, "\n")
}

// MultiErrorOrNil returns nil iff multierr holds no errors. Otherwise, multierr is
// returned formatted by FormatMultiError.
func MultiErrorOrNil(multierr *multierror.Error) error {
	if multierr == nil || len(multierr.Errors) == 0 {
		return nil
	}
	multierr.ErrorFormat = FormatMultiError
	return multierr
}
