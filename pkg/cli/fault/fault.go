/* Copyright 2025 Gymsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package fault classifies the failure modes of gymsync operations.
// A fault carries a structured kind alongside a human-readable message;
// the message is what callers display, the kind is what they branch on.
package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies a class of failure
type Kind int

const (
	// KindUnknown is a failure that does not fit any other kind
	KindUnknown Kind = iota
	// KindRemoteQuery is a failure reading from the remote member collection
	KindRemoteQuery
	// KindRemoteWrite is a failure writing to a remote store
	KindRemoteWrite
	// KindCacheIO is an I/O or serialization failure in the local cache
	KindCacheIO
	// KindUpload is a failure uploading a blob to object storage
	KindUpload
	// KindValidation is a client-side validation failure detected before any
	// remote call
	KindValidation
)

// String returns a human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindRemoteQuery:
		return "remote_query"
	case KindRemoteWrite:
		return "remote_write"
	case KindCacheIO:
		return "cache_io"
	case KindUpload:
		return "upload"
	case KindValidation:
		return "validation"
	}

	return "unknown"
}

// Error is an error with a fault kind
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// Error returns the error message. The cause's message is preserved verbatim.
func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

// Kind returns the fault kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the underlying cause. It implements the causer interface of
// github.com/pkg/errors.
func (e *Error) Cause() error {
	return e.cause
}

// New creates an error with the given kind and message
func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

// Wrap annotates the given error with a kind and a message. It returns nil if
// the given error is nil.
func Wrap(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}

	return &Error{kind: kind, msg: msg, cause: err}
}

// KindOf returns the kind of the outermost fault in the given error chain,
// or KindUnknown if the chain contains no fault.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindUnknown
}

// Is reports whether any fault in the given error chain has the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
