/*
 * MIT License
 *
 * Copyright (c) 2022-2026  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package errors defines the error taxonomy of the composition engine.
//
// All failures surface as sentinel errors so that callers can branch with
// errors.Is. Formatted constructors add the failing blueprint, member or
// extension to the message while keeping the sentinel in the error chain.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned when a blueprint name is required but not provided.
	ErrNameRequired = errors.New("blueprint name is required")

	// ErrInvalidName is returned when a blueprint, member or method name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidName = errors.New("invalid name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNilExtension is returned when a nil extension is handed to a derivation.
	ErrNilExtension = errors.New("extension is not defined")

	// ErrExtensionNotApplicable is returned when an extension declines the target blueprint.
	// Nothing is synthesized and the target is left untouched.
	ErrExtensionNotApplicable = errors.New("extension cannot extend the target blueprint")

	// ErrMemberConflict is returned when a member name is injected twice.
	// Member injection is write-once across base members and every applied extension.
	ErrMemberConflict = errors.New("member already exists")

	// ErrMethodNotFound is returned when the referenced method is not part of the blueprint.
	ErrMethodNotFound = errors.New("method not found")

	// ErrMemberNotFound is returned when the referenced member resolves neither on the
	// instance nor on its blueprint.
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidArguments is returned when a call does not satisfy the method signature.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrBlueprintSealed is returned when attempting to mutate a sealed blueprint.
	// Members and wraps can only be installed while a derivation is being applied.
	ErrBlueprintSealed = errors.New("blueprint is sealed")

	// ErrBlueprintNotSealed is returned when deriving from or instantiating a blueprint
	// that is still under construction.
	ErrBlueprintNotSealed = errors.New("blueprint is not sealed")

	// ErrNilMethod is returned when a nil method is installed on a blueprint.
	ErrNilMethod = errors.New("method is not defined")

	// ErrNilWrapper is returned when a nil wrapper is installed on a method.
	ErrNilWrapper = errors.New("wrapper is not defined")

	// ErrNilReceiverFactory is returned when a nil receiver factory is configured.
	ErrNilReceiverFactory = errors.New("receiver factory is not defined")

	// ErrDuplicateParam is returned when a signature declares the same parameter twice.
	ErrDuplicateParam = errors.New("duplicate parameter")

	// ErrRequiredAfterOptional is returned when a signature declares a required parameter
	// after an optional one.
	ErrRequiredAfterOptional = errors.New("required parameter declared after optional parameter")
)

// NewErrInvalidName wraps a base error with ErrInvalidName to carry the offending name.
func NewErrInvalidName(err error) error {
	return errors.Join(ErrInvalidName, err)
}

// NewErrExtensionNotApplicable formats an ErrExtensionNotApplicable with the given
// extension and blueprint names.
func NewErrExtensionNotApplicable(extension, blueprint string) error {
	return fmt.Errorf("extension=(%s) blueprint=(%s) %w", extension, blueprint, ErrExtensionNotApplicable)
}

// NewErrMemberConflict formats an ErrMemberConflict with the owning blueprint, the
// member name and the origin currently holding it.
func NewErrMemberConflict(blueprint, member, holder string) error {
	return fmt.Errorf("blueprint=(%s) member=(%s) held by=(%s) %w", blueprint, member, holder, ErrMemberConflict)
}

// NewErrMethodNotFound formats an ErrMethodNotFound with the given blueprint and method names.
func NewErrMethodNotFound(blueprint, method string) error {
	return fmt.Errorf("blueprint=(%s) method=(%s) %w", blueprint, method, ErrMethodNotFound)
}

// NewErrMemberNotFound formats an ErrMemberNotFound with the given blueprint and member names.
func NewErrMemberNotFound(blueprint, member string) error {
	return fmt.Errorf("blueprint=(%s) member=(%s) %w", blueprint, member, ErrMemberNotFound)
}

// NewErrInvalidArguments formats an ErrInvalidArguments with the failing method and the reason.
func NewErrInvalidArguments(method, reason string) error {
	return fmt.Errorf("method=(%s) reason=(%s) %w", method, reason, ErrInvalidArguments)
}

// NewErrBlueprintSealed formats an ErrBlueprintSealed with the given blueprint name.
func NewErrBlueprintSealed(blueprint string) error {
	return fmt.Errorf("blueprint=(%s) %w", blueprint, ErrBlueprintSealed)
}

// NewErrBlueprintNotSealed formats an ErrBlueprintNotSealed with the given blueprint name.
func NewErrBlueprintNotSealed(blueprint string) error {
	return fmt.Errorf("blueprint=(%s) %w", blueprint, ErrBlueprintNotSealed)
}

// NewErrDuplicateParam formats an ErrDuplicateParam with the offending parameter name.
func NewErrDuplicateParam(param string) error {
	return fmt.Errorf("param=(%s) %w", param, ErrDuplicateParam)
}

// NewErrRequiredAfterOptional formats an ErrRequiredAfterOptional with the offending
// parameter name.
func NewErrRequiredAfterOptional(param string) error {
	return fmt.Errorf("param=(%s) %w", param, ErrRequiredAfterOptional)
}
