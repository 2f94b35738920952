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

package blueprint

import (
	"fmt"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/validation"
)

// Param describes a single method parameter: its name, whether a caller
// may omit it, and the default value filled in when omitted.
type Param struct {
	name     string
	optional bool
	def      any
}

// Required declares a parameter the caller must always provide.
func Required(name string) Param {
	return Param{name: name}
}

// Optional declares a parameter the caller may omit. When omitted, def is
// bound in its place.
func Optional(name string, def any) Param {
	return Param{name: name, optional: true, def: def}
}

// Name returns the parameter name.
func (p Param) Name() string {
	return p.name
}

// IsOptional reports whether the caller may omit the parameter.
func (p Param) IsOptional() bool {
	return p.optional
}

// Default returns the value bound when an optional parameter is omitted.
// It is always nil for required parameters.
func (p Param) Default() any {
	return p.def
}

// Signature is the ordered parameter list of a method. It survives
// wrapping untouched: callers introspecting a heavily decorated method
// see exactly the parameters the original body declared.
type Signature struct {
	params []Param
}

// NewSignature builds a signature from the given parameters. Parameter
// names are validated, duplicates are rejected, and required parameters
// must all precede optional ones.
func NewSignature(params ...Param) (*Signature, error) {
	seen := make(map[string]struct{}, len(params))
	optionalSeen := false
	for _, param := range params {
		if err := validation.NewIDValidator(param.name).Validate(); err != nil {
			return nil, gerrors.NewErrInvalidName(err)
		}
		if _, ok := seen[param.name]; ok {
			return nil, gerrors.NewErrDuplicateParam(param.name)
		}
		seen[param.name] = struct{}{}
		if param.optional {
			optionalSeen = true
			continue
		}
		if optionalSeen {
			return nil, gerrors.NewErrRequiredAfterOptional(param.name)
		}
	}
	return &Signature{params: append([]Param(nil), params...)}, nil
}

// Params returns a copy of the ordered parameter list.
func (s *Signature) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Names returns the parameter names in declaration order.
func (s *Signature) Names() []string {
	names := make([]string, len(s.params))
	for i, param := range s.params {
		names[i] = param.name
	}
	return names
}

// Arity returns the minimum and maximum number of arguments the
// signature accepts.
func (s *Signature) Arity() (min int, max int) {
	max = len(s.params)
	for _, param := range s.params {
		if !param.optional {
			min++
		}
	}
	return min, max
}

// Clone returns an independent copy of the signature.
func (s *Signature) Clone() *Signature {
	return &Signature{params: append([]Param(nil), s.params...)}
}

// String renders the signature the way it reads in a declaration, e.g.
// (value, index=0).
func (s *Signature) String() string {
	out := "("
	for i, param := range s.params {
		if i > 0 {
			out += ", "
		}
		out += param.name
		if param.optional {
			out += fmt.Sprintf("=%v", param.def)
		}
	}
	return out + ")"
}

// bind checks the given arguments against the signature and returns the
// full positional argument list, with defaults filled in for omitted
// optional parameters.
func (s *Signature) bind(method string, args []any) ([]any, error) {
	min, max := s.Arity()
	if len(args) < min {
		return nil, gerrors.NewErrInvalidArguments(method, fmt.Sprintf("expects at least %d argument(s), got %d", min, len(args)))
	}
	if len(args) > max {
		return nil, gerrors.NewErrInvalidArguments(method, fmt.Sprintf("expects at most %d argument(s), got %d", max, len(args)))
	}
	bound := make([]any, max)
	for i := range s.params {
		if i < len(args) {
			bound[i] = args[i]
			continue
		}
		bound[i] = s.params[i].def
	}
	return bound, nil
}
