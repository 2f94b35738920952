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

// Package blueprint implements a behavior-composition engine. A Blueprint
// is a first-class, sealable member table: named attributes and methods,
// each method carrying an explicit signature and a wrap chain. Extensions
// derive new blueprints from sealed ones, injecting members and wrapping
// methods without ever touching the base. Sealed blueprints instantiate
// Objects that dispatch through the composed method entries.
package blueprint

import (
	"context"
	"os"
	"reflect"
	"strconv"
	"strings"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/hash"
	"github.com/tochemey/extendable/internal/chain"
	"github.com/tochemey/extendable/internal/locker"
	"github.com/tochemey/extendable/internal/registry"
	"github.com/tochemey/extendable/internal/validation"
	"github.com/tochemey/extendable/log"
	"github.com/tochemey/extendable/metric"
)

const (
	// InitMethod is the name of the construction method every blueprint
	// carries. NewInstance dispatches it, so extensions wrapping it run
	// around construction.
	InitMethod = "init"

	// baseOrigin marks members installed by the base blueprint itself
	// rather than by an extension.
	baseOrigin = "base"

	// instanceOrigin marks members injected on a single object at runtime.
	instanceOrigin = "instance"
)

// Blueprint is a class-like value: a named member table plus the set of
// extensions composed onto it. A blueprint is mutable only while a
// derivation is being applied; New and Extend both return it sealed.
// Sealed blueprints are immutable and safe for concurrent use.
type Blueprint struct {
	_ locker.NoCopy

	name     string
	receiver func() any

	// construction options stashed until New installs them through the
	// conflict-checking member path
	initFn     Func
	initParams []Param
	pending    []pendingMember

	methods    map[string]*Method
	attributes map[string]any
	// origins maps every member name to the origin holding it, making
	// member injection write-once across the whole derivation chain
	origins map[string]string
	// order preserves member installation order for fingerprinting and
	// introspection
	order []string

	applied      goset.Set[reflect.Type]
	appliedOrder []string
	registry     registry.Registry

	// applying names the extension currently running Apply; empty
	// outside of application
	applying string
	sealed   atomic.Bool

	fingerprint uint64

	logger log.Logger
	hasher hash.Hasher
	meter  otelmetric.Meter

	instancesCount atomic.Int64
	callsCount     atomic.Int64
}

// pendingMember carries a WithMethod or WithAttribute option until New
// installs it.
type pendingMember struct {
	name   string
	value  any
	method bool
}

// New creates and seals a base blueprint. The name must satisfy the
// identifier rules. Every blueprint carries an init method entry, a
// no-op unless WithInit is given, so construction is always wrappable.
func New(name string, opts ...Option) (*Blueprint, error) {
	if name == "" {
		return nil, gerrors.ErrNameRequired
	}
	if err := validation.NewIDValidator(name).Validate(); err != nil {
		return nil, gerrors.NewErrInvalidName(err)
	}

	bp := &Blueprint{
		name:       name,
		receiver:   func() any { return nil },
		methods:    make(map[string]*Method),
		attributes: make(map[string]any),
		origins:    make(map[string]string),
		applied:    goset.NewSet[reflect.Type](),
		registry:   registry.NewRegistry(),
		logger:     log.New(log.ErrorLevel, os.Stderr),
		hasher:     hash.DefaultHasher(),
	}

	// apply the various options
	for _, opt := range opts {
		opt.Apply(bp)
	}

	if bp.receiver == nil {
		return nil, gerrors.ErrNilReceiverFactory
	}

	if bp.initFn == nil {
		bp.initFn = func(*Object, ...any) (any, error) { return nil, nil }
		bp.initParams = nil
	}

	initMethod, err := NewMethod(bp.initFn, bp.initParams...)
	if err != nil {
		return nil, err
	}
	if err := bp.set(InitMethod, initMethod); err != nil {
		return nil, err
	}

	for _, member := range bp.pending {
		if member.method {
			method, ok := member.value.(*Method)
			if !ok || method == nil {
				return nil, gerrors.ErrNilMethod
			}
		}
		if err := bp.set(member.name, member.value); err != nil {
			return nil, err
		}
	}

	bp.pending = nil
	bp.initFn = nil
	bp.initParams = nil

	if err := bp.seal(); err != nil {
		return nil, err
	}
	return bp, nil
}

// Extend derives a new sealed blueprint carrying every given extension,
// applied in order. The receiver is never mutated. Each extension is
// first asked whether it can extend the receiver; the first rejection
// aborts before anything is synthesized. The first application error
// aborts and discards the partial derivation.
func (bp *Blueprint) Extend(extensions ...Extension) (*Blueprint, error) {
	if !bp.sealed.Load() {
		return nil, gerrors.NewErrBlueprintNotSealed(bp.name)
	}

	applicability := chain.New(chain.WithFailFast())
	for _, ext := range extensions {
		applicability.AddRunner(func() error {
			if ext == nil {
				return gerrors.ErrNilExtension
			}
			if !ext.CanExtend(bp) {
				return gerrors.NewErrExtensionNotApplicable(extensionName(ext), bp.name)
			}
			return nil
		})
	}
	if err := applicability.Run(); err != nil {
		bp.logger.Errorf("blueprint=(%s) derivation rejected: %v", bp.name, err)
		return nil, err
	}

	derived := bp.derive()

	application := chain.New(chain.WithFailFast())
	for _, ext := range extensions {
		application.AddRunner(func() error {
			return derived.apply(ext)
		})
	}
	if err := application.Run(); err != nil {
		return nil, err
	}

	if err := derived.seal(); err != nil {
		return nil, err
	}

	bp.logger.Debugf("blueprint=(%s) derived with %d extension(s)", bp.name, len(extensions))
	return derived, nil
}

// Set installs a named member on the blueprint. A *Method value installs
// a method with its own signature and wrap chain; any other value
// installs an attribute. Member injection is write-once: a second Set
// under an already held name fails, whoever holds it. Valid only while
// the blueprint is unsealed, i.e. from inside an extension's Apply.
func (bp *Blueprint) Set(name string, value any) error {
	if bp.sealed.Load() {
		return gerrors.NewErrBlueprintSealed(bp.name)
	}
	return bp.set(name, value)
}

// Wrap installs the wrapper as the new outermost layer of the named
// method. The method signature is untouched. Valid only while the
// blueprint is unsealed, i.e. from inside an extension's Apply.
func (bp *Blueprint) Wrap(method string, wrapper Wrapper) error {
	if bp.sealed.Load() {
		return gerrors.NewErrBlueprintSealed(bp.name)
	}
	if wrapper == nil {
		return gerrors.ErrNilWrapper
	}
	entry, ok := bp.methods[method]
	if !ok {
		return gerrors.NewErrMethodNotFound(bp.name, method)
	}
	entry.fn = composeWrap(method, wrapper, entry.fn)
	entry.wraps = append(entry.wraps, bp.origin())
	bp.logger.Debugf("blueprint=(%s) method=(%s) wrapped by=(%s)", bp.name, method, bp.origin())
	return nil
}

// NewInstance creates an object of the blueprint and runs the composed
// init chain with the given arguments bound against the init signature.
// The object exists before init dispatches, so init wrappers can already
// inject instance members. Any error from binding or from the chain
// aborts the construction and no object is returned.
func (bp *Blueprint) NewInstance(args ...any) (*Object, error) {
	if !bp.sealed.Load() {
		return nil, gerrors.NewErrBlueprintNotSealed(bp.name)
	}

	object := &Object{
		id:        uuid.NewString(),
		blueprint: bp,
		receiver:  bp.receiver(),
		members:   make(map[string]any),
		pocket:    make(map[string]any),
	}

	if _, err := object.dispatch(InitMethod, args...); err != nil {
		return nil, err
	}

	bp.instancesCount.Inc()
	bp.logger.Debugf("blueprint=(%s) instance=(%s) created", bp.name, object.id)
	return object, nil
}

// Name returns the blueprint name. Derivations keep the name of their
// base.
func (bp *Blueprint) Name() string {
	return bp.name
}

// Sealed reports whether the blueprint is sealed. Only sealed blueprints
// derive and instantiate; only unsealed ones accept members and wraps.
func (bp *Blueprint) Sealed() bool {
	return bp.sealed.Load()
}

// Fingerprint returns the hash of the blueprint shape computed at seal
// time. Blueprints with the same name, members, wraps and application
// order share the same fingerprint across processes.
func (bp *Blueprint) Fingerprint() uint64 {
	return bp.fingerprint
}

// AppliedExtensions returns the set of extension types composed onto the
// blueprint. The returned set is a copy.
func (bp *Blueprint) AppliedExtensions() goset.Set[reflect.Type] {
	return bp.applied.Clone()
}

// HasExtension reports whether an extension of the same type as ext has
// been applied to the blueprint.
func (bp *Blueprint) HasExtension(ext Extension) bool {
	if ext == nil {
		return false
	}
	rtype, ok := bp.registry.Type(ext)
	if !ok {
		return false
	}
	return bp.applied.Contains(rtype)
}

// ExtensionNames returns the canonical names of the applied extensions
// in application order. An extension applied more than once is listed
// once per application.
func (bp *Blueprint) ExtensionNames() []string {
	return append([]string(nil), bp.appliedOrder...)
}

// HasMember reports whether the blueprint holds a member under the given
// name, attribute or method.
func (bp *Blueprint) HasMember(name string) bool {
	_, ok := bp.origins[name]
	return ok
}

// HasMethod reports whether the blueprint holds a method under the given
// name.
func (bp *Blueprint) HasMethod(name string) bool {
	_, ok := bp.methods[name]
	return ok
}

// MemberNames returns every member name in installation order.
func (bp *Blueprint) MemberNames() []string {
	return append([]string(nil), bp.order...)
}

// MethodNames returns every method name in installation order.
func (bp *Blueprint) MethodNames() []string {
	names := make([]string, 0, len(bp.methods))
	for _, name := range bp.order {
		if _, ok := bp.methods[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// MethodSignature returns a fresh copy of the named method's declared
// signature. Wraps never alter it.
func (bp *Blueprint) MethodSignature(name string) (*Signature, error) {
	method, ok := bp.methods[name]
	if !ok {
		return nil, gerrors.NewErrMethodNotFound(bp.name, name)
	}
	return method.Signature(), nil
}

// WrapCount returns the number of wraps installed on the named method,
// or zero when the method does not exist.
func (bp *Blueprint) WrapCount(method string) int {
	entry, ok := bp.methods[method]
	if !ok {
		return 0
	}
	return entry.WrapCount()
}

// Logger returns the blueprint logger.
func (bp *Blueprint) Logger() log.Logger {
	return bp.logger
}

// set installs a member without the seal guard. New relies on it while
// the base blueprint is still under construction.
func (bp *Blueprint) set(name string, value any) error {
	if err := validation.NewIDValidator(name).Validate(); err != nil {
		return gerrors.NewErrInvalidName(err)
	}
	if holder, ok := bp.origins[name]; ok {
		return gerrors.NewErrMemberConflict(bp.name, name, holder)
	}

	switch member := value.(type) {
	case *Method:
		if member == nil {
			return gerrors.ErrNilMethod
		}
		bp.methods[name] = member
	default:
		bp.attributes[name] = value
	}

	bp.origins[name] = bp.origin()
	bp.order = append(bp.order, name)
	bp.logger.Debugf("blueprint=(%s) member=(%s) installed by=(%s)", bp.name, name, bp.origins[name])
	return nil
}

// origin returns the origin recorded for members and wraps installed
// right now: the applying extension, or the base blueprint itself.
func (bp *Blueprint) origin() string {
	if bp.applying != "" {
		return bp.applying
	}
	return baseOrigin
}

// apply runs a single extension against the unsealed derivation and
// records it once it succeeded.
func (bp *Blueprint) apply(ext Extension) error {
	name := extensionName(ext)
	bp.logger.Debugf("blueprint=(%s) applying extension=(%s)", bp.name, name)

	bp.applying = name
	err := ext.Apply(bp)
	bp.applying = ""
	if err != nil {
		bp.logger.Errorf("blueprint=(%s) extension=(%s) failed: %v", bp.name, name, err)
		return err
	}

	bp.registry.Register(ext)
	rtype, _ := bp.registry.Type(ext)
	bp.applied.Add(rtype)
	bp.appliedOrder = append(bp.appliedOrder, name)
	return nil
}

// derive returns a deep, unsealed copy of the blueprint. Members and
// wraps installed on the copy never reach the receiver, and vice versa.
func (bp *Blueprint) derive() *Blueprint {
	derived := &Blueprint{
		name:         bp.name,
		receiver:     bp.receiver,
		methods:      make(map[string]*Method, len(bp.methods)),
		attributes:   make(map[string]any, len(bp.attributes)),
		origins:      make(map[string]string, len(bp.origins)),
		order:        append([]string(nil), bp.order...),
		applied:      bp.applied.Clone(),
		appliedOrder: append([]string(nil), bp.appliedOrder...),
		registry:     registry.NewRegistry(),
		logger:       bp.logger,
		hasher:       bp.hasher,
		meter:        bp.meter,
	}
	for name, method := range bp.methods {
		derived.methods[name] = method.clone()
	}
	for name, value := range bp.attributes {
		derived.attributes[name] = value
	}
	for name, holder := range bp.origins {
		derived.origins[name] = holder
	}
	for _, rtype := range bp.registry.TypesMap() {
		derived.registry.Register(rtype)
	}
	return derived
}

// seal freezes the blueprint: fingerprint computed, instruments
// registered when a meter is configured, mutation rejected from now on.
func (bp *Blueprint) seal() error {
	bp.fingerprint = bp.hasher.HashCode([]byte(bp.shape()))
	if bp.meter != nil {
		if err := bp.registerMetrics(); err != nil {
			return err
		}
	}
	bp.sealed.Store(true)
	bp.logger.Debugf("blueprint=(%s) sealed, fingerprint=(%x)", bp.name, bp.fingerprint)
	return nil
}

// shape renders the canonical structural description hashed into the
// fingerprint: name, members in installation order with kind, origin,
// signature and wrap count, and the extension application order.
func (bp *Blueprint) shape() string {
	builder := new(strings.Builder)
	builder.WriteString(bp.name)
	for _, name := range bp.order {
		if method, ok := bp.methods[name]; ok {
			builder.WriteString("|method:" + name + method.signature.String() + "@" + bp.origins[name] + "*" + strconv.Itoa(method.WrapCount()))
			continue
		}
		builder.WriteString("|attribute:" + name + "@" + bp.origins[name])
	}
	for _, name := range bp.appliedOrder {
		builder.WriteString("|extension:" + name)
	}
	return builder.String()
}

// wrapTotal returns the number of wraps installed across all methods.
func (bp *Blueprint) wrapTotal() int {
	total := 0
	for _, method := range bp.methods {
		total += method.WrapCount()
	}
	return total
}

// registerMetrics registers the blueprint metrics with OTel instrumentation.
func (bp *Blueprint) registerMetrics() error {
	metrics, err := metric.NewBlueprintMetric(bp.meter)
	if err != nil {
		return err
	}

	// define the common labels
	labels := []attribute.KeyValue{
		attribute.String("blueprint.name", bp.name),
	}

	// register the metrics
	_, err = bp.meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		observer.ObserveInt64(metrics.InstancesCount(), bp.instancesCount.Load(), otelmetric.WithAttributes(labels...))
		observer.ObserveInt64(metrics.CallsCount(), bp.callsCount.Load(), otelmetric.WithAttributes(labels...))
		observer.ObserveInt64(metrics.ExtensionsCount(), int64(len(bp.appliedOrder)), otelmetric.WithAttributes(labels...))
		observer.ObserveInt64(metrics.WrapsCount(), int64(bp.wrapTotal()), otelmetric.WithAttributes(labels...))
		return nil
	}, metrics.InstancesCount(),
		metrics.CallsCount(),
		metrics.ExtensionsCount(),
		metrics.WrapsCount())

	return err
}
