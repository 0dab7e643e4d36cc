package util

import (
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestMultiErrorOrNil(t *testing.T) {
	require.Nil(t, MultiErrorOrNil(nil))
	require.Nil(t, MultiErrorOrNil(&multierror.Error{}))

	var multierr *multierror.Error
	multierr = multierror.Append(multierr, fmt.Errorf("first"), fmt.Errorf("second"))
	err := MultiErrorOrNil(multierr)
	require.NotNil(t, err)
	require.IsType(t, &multierror.Error{}, err)
	require.Equal(t, "first\nsecond", err.Error())
}
