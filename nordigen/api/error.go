package api

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

var (
	// ErrUnsupportedMethod marker for HTTP verbs other than GET, POST, PUT and DELETE
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrUnauthorized      = errors.New("nordigen unauthorized")
	ErrForbidden         = errors.New("nordigen forbidden")
	ErrNotFound          = errors.New("nordigen resource not found")
	ErrRateLimited       = errors.New("nordigen rate limit exceeded")
)

type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("method %q is not supported", string(e.Method))
}

func (e *UnsupportedMethodError) Is(target error) bool {
	return target == ErrUnsupportedMethod
}

// RequestError non-success HTTP response. Response holds the parsed body exactly as the API returned it.
type RequestError struct {
	StatusCode int
	Body       string
	Response   any
	Summary    string
	Detail     string
}

func (e *RequestError) Error() string {
	msg := e.Summary
	if e.Detail != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Detail
	}
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("nordigen returns http status %d: %s", e.StatusCode, msg)
}

// Is maps well known status codes to the package sentinels, so callers can check errors.Is(err, api.ErrUnauthorized).
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a RequestError.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// extractMessage reads top level "summary" and "detail" strings from an error body.
// Field level errors (e.g. {"institution_id": {"summary": ...}}) are left in Response.
func extractMessage(body []byte) (summary, detail string) {
	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return "", ""
	}

	_ = d.Obj(func(d *jx.Decoder, key string) error {
		if d.Next() != jx.String {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return err
		}
		switch key {
		case "summary":
			summary = v
		case "detail":
			detail = v
		}
		return nil
	})
	return summary, detail
}
