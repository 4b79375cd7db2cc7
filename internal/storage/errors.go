package storage

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"

	"github.com/minio/minio-go/v7"
)

// ErrConfiguration is returned when region, endpoint or bucket is missing.
var ErrConfiguration = errors.New("storage configuration is incomplete")

// ErrInvalidKey is returned when an object key is empty.
var ErrInvalidKey = errors.New("invalid object key")

// Sentinels matched by errors.Is against a *Fault of the corresponding kind.
var (
	ErrStorageClient     = errors.New("storage client error")
	ErrStorageServer     = errors.New("storage server error")
	ErrStorageUnexpected = errors.New("unexpected storage error")
)

// unknown fills diagnostic fields the backend did not report.
const unknown = "Unknown"

// sdkRequestID is the request id minio-go puts on errors it raises locally.
const sdkRequestID = "minio"

// FaultKind tells where a storage failure originated.
type FaultKind int

const (
	FaultClient FaultKind = iota + 1
	FaultServer
	FaultUnexpected
)

func (k FaultKind) String() string {
	switch k {
	case FaultClient:
		return "client"
	case FaultServer:
		return "server"
	default:
		return "unexpected"
	}
}

// Fault is a classified storage backend failure.
// RequestID, StatusCode, Code and Message are only populated for FaultServer.
type Fault struct {
	Kind       FaultKind
	RequestID  string
	StatusCode string
	Code       string
	Message    string
	Err        error
}

func (f *Fault) Error() string {
	switch f.Kind {
	case FaultClient:
		return fmt.Sprintf("storage client error: %v", f.Err)
	case FaultServer:
		return fmt.Sprintf("storage server error (%s): %s", f.Code, f.Message)
	default:
		return "an unexpected error occurred while interacting with object storage"
	}
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel for the fault's kind.
func (f *Fault) Is(target error) bool {
	switch target {
	case ErrStorageClient:
		return f.Kind == FaultClient
	case ErrStorageServer:
		return f.Kind == FaultServer
	case ErrStorageUnexpected:
		return f.Kind == FaultUnexpected
	}
	return false
}

// Classify converts an error returned by the storage SDK into a *Fault.
// It never returns nil for a non-nil err.
func Classify(err error) *Fault {
	if err == nil {
		return nil
	}

	var errResp minio.ErrorResponse
	if errors.As(err, &errResp) {
		if isLocalError(errResp) {
			log.Printf("storage: client error: %v", err)
			return &Fault{Kind: FaultClient, Err: err}
		}

		f := &Fault{
			Kind:       FaultServer,
			RequestID:  orUnknown(errResp.RequestID),
			StatusCode: unknown,
			Code:       orUnknown(errResp.Code),
			Message:    orUnknown(errResp.Error()),
			Err:        err,
		}
		if errResp.StatusCode != 0 {
			f.StatusCode = strconv.Itoa(errResp.StatusCode)
		}
		log.Printf("storage: server error request_id=%s status=%s code=%s message=%q",
			f.RequestID, f.StatusCode, f.Code, f.Message)
		return f
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		log.Printf("storage: client error: %v", err)
		return &Fault{Kind: FaultClient, Err: err}
	}

	log.Printf("storage: unexpected error: %v", err)
	return &Fault{Kind: FaultUnexpected, Err: err}
}

// sdkLocalCodes are the codes minio-go raises on its own, without a request
// id, while checking a PUT before or while it streams the body.
var sdkLocalCodes = map[string]bool{
	"EntityTooLarge": true,
	"EntityTooSmall": true,
	"UnexpectedEOF":  true,
}

// isLocalError reports whether minio-go produced the error itself, before
// or without getting an answer from the backend. Anything else came back
// from the backend, even when it carried no request id.
func isLocalError(e minio.ErrorResponse) bool {
	if e.RequestID == sdkRequestID {
		return true
	}
	return e.RequestID == "" && e.HostID == "" && e.Server == "" && sdkLocalCodes[e.Code]
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
