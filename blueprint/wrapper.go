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

// Wrapper decorates a method with behavior running before and after its
// body. Wrappers compose: the last wrapper installed runs outermost, so
// its Before phase fires first and its After phase fires last.
//
// An error from Before skips the inner call and every remaining phase of
// the invocation. An error from the inner call skips every After phase.
// An error from an After phase skips the After phases of the wrappers
// outside it. Wrappers observe arguments and results; they never change
// them.
type Wrapper interface {
	// Before runs ahead of the wrapped entry. The invocation carries the
	// target object and the bound arguments the body will receive.
	Before(inv *Invocation) error

	// After runs once the wrapped entry returned successfully. The
	// invocation additionally carries the result.
	After(inv *Invocation) error
}

// BeforeFunc adapts a function into a Wrapper with a no-op After phase.
type BeforeFunc func(inv *Invocation) error

var _ Wrapper = BeforeFunc(nil)

// Before runs the adapted function.
func (f BeforeFunc) Before(inv *Invocation) error {
	return f(inv)
}

// After is a no-op.
func (f BeforeFunc) After(*Invocation) error {
	return nil
}

// AfterFunc adapts a function into a Wrapper with a no-op Before phase.
type AfterFunc func(inv *Invocation) error

var _ Wrapper = AfterFunc(nil)

// Before is a no-op.
func (f AfterFunc) Before(*Invocation) error {
	return nil
}

// After runs the adapted function.
func (f AfterFunc) After(inv *Invocation) error {
	return f(inv)
}

// NewWrapper builds a Wrapper from the two phase functions. Either may be
// nil, turning that phase into a no-op.
func NewWrapper(before, after func(inv *Invocation) error) Wrapper {
	return &wrapper{before: before, after: after}
}

type wrapper struct {
	before func(inv *Invocation) error
	after  func(inv *Invocation) error
}

var _ Wrapper = (*wrapper)(nil)

func (w *wrapper) Before(inv *Invocation) error {
	if w.before == nil {
		return nil
	}
	return w.before(inv)
}

func (w *wrapper) After(inv *Invocation) error {
	if w.after == nil {
		return nil
	}
	return w.after(inv)
}

// Invocation carries one method call through the two phases of a single
// wrapper. Every wrapper layer gets its own Invocation per call; the
// Before and After phases of that layer share it.
type Invocation struct {
	object *Object
	method string
	args   []any
	result any
	stash  map[string]any
}

// Object returns the instance the method was called on.
func (x *Invocation) Object() *Object {
	return x.object
}

// Method returns the name of the called method.
func (x *Invocation) Method() string {
	return x.method
}

// Args returns the bound argument list, defaults included. The slice is
// owned by the invocation; mutating it does not change what the method
// body receives.
func (x *Invocation) Args() []any {
	return x.args
}

// Result returns the value produced by the wrapped entry. It is set only
// once the entry returned, so Before phases always observe nil.
func (x *Invocation) Result() any {
	return x.result
}

// Stash returns a scratch map shared by the Before and After phases of
// this wrapper layer for this call. It is allocated on first use.
func (x *Invocation) Stash() map[string]any {
	if x.stash == nil {
		x.stash = make(map[string]any)
	}
	return x.stash
}

// composeWrap layers a wrapper around the current method entry and
// returns the new entry.
func composeWrap(method string, w Wrapper, inner Func) Func {
	return func(obj *Object, args ...any) (any, error) {
		inv := &Invocation{
			object: obj,
			method: method,
			args:   append([]any(nil), args...),
		}
		if err := w.Before(inv); err != nil {
			return nil, err
		}
		result, err := inner(obj, args...)
		if err != nil {
			return nil, err
		}
		inv.result = result
		if err := w.After(inv); err != nil {
			return nil, err
		}
		return result, nil
	}
}
