package render

import (
	"errors"
	"fmt"
)

// Kind classifies fatal request failures. Unusable field geometry is
// deliberately not represented here: it is absorbed by the fallback list
// mode and never surfaces as an error.
type Kind string

const (
	// KindEncoding means the template payload was not valid base64.
	KindEncoding Kind = "encoding_error"
	// KindBadTemplate means the payload is neither a parseable PDF nor a
	// decodable JPEG/PNG image.
	KindBadTemplate Kind = "bad_template"
	// KindTooLarge means the decoded payload exceeds the configured limit.
	KindTooLarge Kind = "request_too_large"
	// KindInternal covers draw and serialization failures.
	KindInternal Kind = "internal_error"
)

// RequestError is a fatal, per-request failure with enough context to
// reproduce. It is logged at the transport boundary and translated into a
// generic response there.
type RequestError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *RequestError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain, defaulting to
// KindInternal for errors this package did not classify.
func KindOf(err error) Kind {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInternal
}
