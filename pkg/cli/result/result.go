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

// Package result models the observable outcome of an asynchronous operation.
// Every operation completes with exactly one of: in-progress, success with a
// payload, or error with a message.
package result

import "github.com/gymsync/gymsync/pkg/cli/fault"

// State is the progress state of an operation
type State int

const (
	// StateInProgress indicates that the operation has started but not completed
	StateInProgress State = iota
	// StateSuccess indicates that the operation completed with a payload
	StateSuccess
	// StateError indicates that the operation failed with a message
	StateError
)

// Result is the outcome of an operation. On success Data carries the payload;
// on error Message carries a human-readable description and Kind the fault
// classification.
type Result[T any] struct {
	State   State
	Data    T
	Message string
	Kind    fault.Kind
}

// InProgress returns an in-progress result
func InProgress[T any]() Result[T] {
	return Result[T]{State: StateInProgress}
}

// Success returns a successful result carrying the given payload
func Success[T any](data T) Result[T] {
	return Result[T]{State: StateSuccess, Data: data}
}

// Error returns a failed result carrying the message of the given error
func Error[T any](err error) Result[T] {
	return Result[T]{State: StateError, Message: err.Error(), Kind: fault.KindOf(err)}
}

// IsSuccess returns true if the result is a success
func (r Result[T]) IsSuccess() bool {
	return r.State == StateSuccess
}

// IsError returns true if the result is an error
func (r Result[T]) IsError() bool {
	return r.State == StateError
}
