// Copyright 2022-2025 The Lightspark SDK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lightspark

import (
	"errors"
	"fmt"
)

// An Error captures a Code and an underlying Go error. Every error returned
// by the decoders, encoders and codecs in this module is, or wraps, an *Error,
// so callers can branch on CodeOf(err) without matching message text.
//
// Errors raised while resolving an interface type also record the interface
// name and the offending __typename. A client that receives
// CodeUnknownInterface is usually older than the server it's talking to.
type Error struct {
	code     Code
	err      error
	iface    string
	typename string
}

// NewError annotates any Go error with a code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

// NewUnknownInterfaceError reports that typename isn't a known implementation
// of the named GraphQL interface or union.
func NewUnknownInterfaceError(iface, typename string) *Error {
	err := fmt.Errorf(
		"Couldn't find a concrete type for interface %s corresponding to the typename=%s",
		iface,
		typename,
	)
	return &Error{code: CodeUnknownInterface, err: err, iface: iface, typename: typename}
}

// Errorf calls fmt.Errorf with the supplied template and arguments, then wraps
// the resulting error.
func Errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

func (e *Error) Error() string {
	if e.err == nil || e.err.Error() == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + e.err.Error()
}

// Unwrap allows errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// Interface returns the GraphQL interface being resolved. It's empty unless
// the code is CodeUnknownInterface.
func (e *Error) Interface() string {
	return e.iface
}

// Typename returns the unrecognized __typename. It's empty unless the code is
// CodeUnknownInterface.
func (e *Error) Typename() string {
	return e.typename
}

// CodeOf returns the error's code if it is or wraps an *Error and CodeUnknown
// otherwise.
func CodeOf(err error) Code {
	if lsErr, ok := AsError(err); ok {
		return lsErr.Code()
	}
	return CodeUnknown
}

// AsError uses errors.As to unwrap any error and look for an *Error.
func AsError(err error) (*Error, bool) {
	var lsErr *Error
	ok := errors.As(err, &lsErr)
	return lsErr, ok
}
