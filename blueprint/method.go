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
	gerrors "github.com/tochemey/extendable/errors"
)

// Func is the shape of every method body. Arguments arrive already bound
// against the method signature, defaults included.
type Func func(obj *Object, args ...any) (any, error)

// Method is a named behavior installed on a blueprint: a body, the
// signature it was declared with, and the wraps decorating it.
type Method struct {
	fn        Func
	signature *Signature
	wraps     []string
}

// NewMethod builds a method from a body and its parameter declarations.
func NewMethod(fn Func, params ...Param) (*Method, error) {
	if fn == nil {
		return nil, gerrors.ErrNilMethod
	}
	signature, err := NewSignature(params...)
	if err != nil {
		return nil, err
	}
	return &Method{fn: fn, signature: signature}, nil
}

// Signature returns a fresh copy of the declared signature. Wrapping a
// method never alters what this returns.
func (m *Method) Signature() *Signature {
	return m.signature.Clone()
}

// WrapCount returns the number of wraps installed on the method.
func (m *Method) WrapCount() int {
	return len(m.wraps)
}

// clone returns an independent copy for a derived blueprint. The
// composed entry is shared: wraps installed later on either copy build a
// new entry and never reach the other.
func (m *Method) clone() *Method {
	return &Method{
		fn:        m.fn,
		signature: m.signature.Clone(),
		wraps:     append([]string(nil), m.wraps...),
	}
}
