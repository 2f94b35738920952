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
	"reflect"

	goset "github.com/deckarep/golang-set/v2"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/locker"
	"github.com/tochemey/extendable/internal/validation"
)

// Object is an instance of a sealed blueprint: the receiver produced by
// the blueprint's factory plus the members injected on this instance.
// An object belongs to the goroutine constructing it. It carries no
// internal locking; callers sharing one across goroutines must
// synchronize themselves.
type Object struct {
	_ locker.NoCopy

	id        string
	blueprint *Blueprint
	receiver  any
	members   map[string]any
	// pocket is the extension data store, reserved by convention for
	// extensions keeping per-instance state
	pocket map[string]any
}

// ID returns the unique identifier assigned at construction.
func (x *Object) ID() string {
	return x.id
}

// Blueprint returns the blueprint the object was instantiated from.
func (x *Object) Blueprint() *Blueprint {
	return x.blueprint
}

// Receiver returns the host state produced by the blueprint's receiver
// factory for this object. Method bodies cast it back to its concrete
// type.
func (x *Object) Receiver() any {
	return x.receiver
}

// Call binds the arguments against the named method's signature and runs
// its composed entry: the wrap chain, outermost first, then the body.
func (x *Object) Call(method string, args ...any) (any, error) {
	return x.dispatch(method, args...)
}

// Get resolves the named member. Instance members win over blueprint
// attributes, which win over blueprint methods. A method resolves to its
// *Method value.
func (x *Object) Get(name string) (any, bool) {
	if value, ok := x.members[name]; ok {
		return value, true
	}
	if value, ok := x.blueprint.attributes[name]; ok {
		return value, true
	}
	if method, ok := x.blueprint.methods[name]; ok {
		return method, true
	}
	return nil, false
}

// Has reports whether the name resolves on the instance or on its
// blueprint.
func (x *Object) Has(name string) bool {
	if _, ok := x.members[name]; ok {
		return true
	}
	_, ok := x.blueprint.origins[name]
	return ok
}

// Set injects a member on this object only. Injection is write-once
// against the full member namespace: a name already held by the
// instance or by the blueprint fails with the holder reported.
func (x *Object) Set(name string, value any) error {
	if err := validation.NewIDValidator(name).Validate(); err != nil {
		return gerrors.NewErrInvalidName(err)
	}
	if _, ok := x.members[name]; ok {
		return gerrors.NewErrMemberConflict(x.blueprint.name, name, instanceOrigin)
	}
	if holder, ok := x.blueprint.origins[name]; ok {
		return gerrors.NewErrMemberConflict(x.blueprint.name, name, holder)
	}
	x.members[name] = value
	return nil
}

// Update overwrites an existing member. The name must resolve on the
// instance or on the blueprint; the new value always lands on the
// instance, shadowing a blueprint member of the same name from then on.
func (x *Object) Update(name string, value any) error {
	if !x.Has(name) {
		return gerrors.NewErrMemberNotFound(x.blueprint.name, name)
	}
	x.members[name] = value
	return nil
}

// ExtensionData returns the live per-instance extension data store. It
// is never shared across objects nor with the blueprint.
func (x *Object) ExtensionData() map[string]any {
	return x.pocket
}

// AppliedExtensions returns the set of extension types composed onto the
// owning blueprint. The returned set is a copy.
func (x *Object) AppliedExtensions() goset.Set[reflect.Type] {
	return x.blueprint.AppliedExtensions()
}

// dispatch resolves the method entry, binds the arguments and runs the
// composed chain. A *Method injected on the instance shadows the
// blueprint method of the same name; any other instance member never
// occludes the method table.
func (x *Object) dispatch(name string, args ...any) (any, error) {
	method, ok := x.blueprint.methods[name]
	if shadow, found := x.members[name]; found {
		if injected, isMethod := shadow.(*Method); isMethod && injected != nil {
			method, ok = injected, true
		}
	}
	if !ok {
		return nil, gerrors.NewErrMethodNotFound(x.blueprint.name, name)
	}

	bound, err := method.signature.bind(name, args)
	if err != nil {
		return nil, err
	}

	x.blueprint.callsCount.Inc()
	return method.fn(x, bound...)
}
