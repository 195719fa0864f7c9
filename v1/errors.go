package v1

import (
	"context"
	stderr "errors"
	"fmt"
	"net"
	"os"

	"github.com/Station-Manager/errors"
)

// Sentinel errors for errors.Is checks against an *Error.
var (
	// ErrCallsignParsing matches failures of local callsign validation.
	ErrCallsignParsing = stderr.New("invalid callsign")

	// ErrTransport matches any failed HTTP round trip, timeouts included.
	ErrTransport = stderr.New("failed to send api request")

	// ErrTimeout matches requests that ran past their deadline.
	ErrTimeout = stderr.New("request to api timed out")

	// ErrDecode matches response bodies that could not be decoded.
	ErrDecode = stderr.New("failed to parse api response")

	// ErrNotFound matches lookups HamDB reported as NOT_FOUND. It also
	// matches the shared Station-Manager errors.ErrNotFound.
	ErrNotFound = stderr.New("callsign was not found")
)

// Kind classifies a lookup failure.
type Kind uint8

const (
	KindCallsignParsing Kind = iota + 1
	KindTransport
	KindTimeout
	KindDecode
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindCallsignParsing:
		return "callsign parsing"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is returned by every failed lookup.
type Error struct {
	Kind Kind
	// Callsign is the normalized base callsign. Empty for KindCallsignParsing.
	Callsign string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCallsignParsing:
		if e.Err != nil {
			return e.Err.Error()
		}
		return ErrCallsignParsing.Error()
	case KindNotFound:
		return fmt.Sprintf("callsign %q was not found", e.Callsign)
	}

	msg := e.sentinel().Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel matching.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport || e.Kind == KindTimeout
	case errors.ErrNotFound:
		return e.Kind == KindNotFound
	}
	s := e.sentinel()
	return s != nil && target == s
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindCallsignParsing:
		return ErrCallsignParsing
	case KindTransport:
		return ErrTransport
	case KindTimeout:
		return ErrTimeout
	case KindDecode:
		return ErrDecode
	case KindNotFound:
		return ErrNotFound
	}
	return nil
}

// transportKind decides whether a failed round trip was a timeout.
func transportKind(err error) Kind {
	if isTimeout(err) {
		return KindTimeout
	}
	return KindTransport
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}

	if stderr.Is(err, context.DeadlineExceeded) || stderr.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	// covers *url.Error, *net.OpError and *net.DNSError
	var netErr net.Error
	if stderr.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
