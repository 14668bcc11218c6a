package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testType        = "Admin"
	testID          = "tony@starkindustries.com"
	testErrorReason = "i don't have to answer to you"
)

var testErrorDetails = []string{"the", "devil", "is", "in", "the", "details"}

func TestErrAuthentication(t *testing.T) {
	err := NewErrAuthentication(testErrorReason)
	require.Contains(t, err.Error(), testErrorReason)
}

func TestErrAuthorization(t *testing.T) {
	err := NewErrAuthorization()
	require.Contains(t, err.Error(), "not authorized")
}

func TestErrBadRequest(t *testing.T) {
	testCases := []struct {
		name       string
		err        *ErrBadRequest
		assertions func(t *testing.T, err *ErrBadRequest)
	}{
		{
			name: "without details",
			err:  NewErrBadRequest(testErrorReason),
			assertions: func(t *testing.T, err *ErrBadRequest) {
				require.Contains(t, err.Error(), testErrorReason)
				for _, detail := range testErrorDetails {
					require.NotContains(t, err.Error(), detail)
				}
			},
		},
		{
			name: "with details",
			err:  NewErrBadRequest(testErrorReason, testErrorDetails...),
			assertions: func(t *testing.T, err *ErrBadRequest) {
				require.Contains(t, err.Error(), testErrorReason)
				for _, detail := range testErrorDetails {
					require.Contains(t, err.Error(), detail)
				}
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.assertions(t, testCase.err)
		})
	}
}

func TestErrNotFound(t *testing.T) {
	err := NewErrNotFound(testType, testID)
	require.Contains(t, err.Error(), testType)
	require.Contains(t, err.Error(), testID)
}

func TestErrConflict(t *testing.T) {
	err := NewErrConflict(testType, testID, "")
	require.Contains(t, err.Error(), testType)
	require.Contains(t, err.Error(), testID)
	err = NewErrConflict(testType, testID, testErrorReason)
	require.Equal(t, testErrorReason, err.Error())
}

func TestErrNotSupported(t *testing.T) {
	err := NewErrNotSupported(testErrorReason)
	require.Contains(t, err.Error(), testErrorReason)
}

func TestErrInternalServer(t *testing.T) {
	err := NewErrInternalServer()
	require.Contains(t, err.Error(), "internal server error")
}
