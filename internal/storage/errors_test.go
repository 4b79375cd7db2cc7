package storage

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_ServerFault(t *testing.T) {
	err := minio.ErrorResponse{
		StatusCode: http.StatusForbidden,
		Code:       "AccessDenied",
		Message:    "Access Denied.",
		RequestID:  "req-123",
	}

	f := Classify(err)

	require.NotNil(t, f)
	assert.Equal(t, FaultServer, f.Kind)
	assert.Equal(t, "req-123", f.RequestID)
	assert.Equal(t, "403", f.StatusCode)
	assert.Equal(t, "AccessDenied", f.Code)
	assert.Equal(t, "Access Denied.", f.Message)
	assert.Equal(t, "storage server error (AccessDenied): Access Denied.", f.Error())
	assert.ErrorIs(t, f, ErrStorageServer)
	assert.NotErrorIs(t, f, ErrStorageClient)
}

func TestClassify_ServerFaultMissingFields(t *testing.T) {
	f := Classify(minio.ErrorResponse{Server: "TosServer", Message: "boom"})

	require.NotNil(t, f)
	assert.Equal(t, FaultServer, f.Kind)
	assert.Equal(t, "Unknown", f.RequestID)
	assert.Equal(t, "Unknown", f.StatusCode)
	assert.Equal(t, "Unknown", f.Code)
	assert.Equal(t, "boom", f.Message)
}

func TestClassify_ServerFaultThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("put object: %w", minio.ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       "InternalError",
		Message:    "We encountered an internal error.",
		RequestID:  "abc",
	})

	f := Classify(wrapped)

	assert.Equal(t, FaultServer, f.Kind)
	assert.Equal(t, "500", f.StatusCode)
}

func TestClassify_ClientFault(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "sdk invalid argument",
			err:  minio.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "InvalidArgument", Message: "bad", RequestID: "minio"},
		},
		{
			name: "sdk local validation",
			err:  minio.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "EntityTooLarge", Message: "too large"},
		},
		{
			name: "sdk short read",
			err:  minio.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "UnexpectedEOF", Message: "short"},
		},
		{
			name: "transport failure",
			err:  &url.Error{Op: "Put", URL: "http://127.0.0.1:1/menus/x", Err: errors.New("connection refused")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.err)

			require.NotNil(t, f)
			assert.Equal(t, FaultClient, f.Kind)
			assert.ErrorIs(t, f, ErrStorageClient)
			assert.ErrorIs(t, f, tt.err)
			assert.Contains(t, f.Error(), "storage client error")
		})
	}
}

func TestClassify_BareBackendBadRequestIsServerFault(t *testing.T) {
	err := minio.ErrorResponse{StatusCode: http.StatusBadRequest, Code: "InvalidArgument", Message: "bad header"}

	f := Classify(err)

	require.NotNil(t, f)
	assert.Equal(t, FaultServer, f.Kind)
	assert.ErrorIs(t, f, ErrStorageServer)
	assert.Equal(t, "Unknown", f.RequestID)
	assert.Equal(t, "400", f.StatusCode)
	assert.Equal(t, "InvalidArgument", f.Code)
}

func TestClassify_Unexpected(t *testing.T) {
	cause := errors.New("Object name cannot be empty")

	f := Classify(cause)

	require.NotNil(t, f)
	assert.Equal(t, FaultUnexpected, f.Kind)
	assert.ErrorIs(t, f, ErrStorageUnexpected)
	assert.ErrorIs(t, f, cause)
	assert.Equal(t, "an unexpected error occurred while interacting with object storage", f.Error())
}

func TestFaultKind_String(t *testing.T) {
	assert.Equal(t, "client", FaultClient.String())
	assert.Equal(t, "server", FaultServer.String())
	assert.Equal(t, "unexpected", FaultUnexpected.String())
}
