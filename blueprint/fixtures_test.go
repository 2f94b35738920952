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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/goleak"

	"github.com/tochemey/extendable/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockHashList is the host state the fixture blueprint operates on: a
// list remembering the insertion index of every value.
type MockHashList struct {
	values  []any
	indexes map[any]int
}

// NewMockHashList creates the host state of a fresh instance
func NewMockHashList() *MockHashList {
	return &MockHashList{
		indexes: make(map[any]int),
	}
}

// newHashListBlueprint builds the container blueprint the scenarios
// derive from: an append method recording values and an index method
// resolving them.
func newHashListBlueprint(t *testing.T, opts ...Option) *Blueprint {
	t.Helper()

	appendMethod, err := NewMethod(func(obj *Object, args ...any) (any, error) {
		list := obj.Receiver().(*MockHashList)
		list.values = append(list.values, args[0])
		list.indexes[args[0]] = len(list.values) - 1
		return nil, nil
	}, Required("value"))
	require.NoError(t, err)

	indexMethod, err := NewMethod(func(obj *Object, args ...any) (any, error) {
		list := obj.Receiver().(*MockHashList)
		position, ok := list.indexes[args[0]]
		if !ok {
			return nil, errors.New("value not found")
		}
		return position, nil
	}, Required("value"))
	require.NoError(t, err)

	options := []Option{
		WithLogger(log.DiscardLogger),
		WithReceiver(func() any { return NewMockHashList() }),
		WithInit(func(obj *Object, args ...any) (any, error) {
			if args[0] == nil {
				return nil, nil
			}
			for _, value := range args[0].([]any) {
				if _, err := obj.Call("append", value); err != nil {
					return nil, err
				}
			}
			return nil, nil
		}, Optional("values", nil)),
		WithMethod("append", appendMethod),
		WithMethod("index", indexMethod),
		WithAttribute("capacity", 1024),
	}
	options = append(options, opts...)

	bp, err := New("hashlist", options...)
	require.NoError(t, err)
	return bp
}

// MockCounter counts appends per instance: an append_count member seeded
// before construction runs and bumped ahead of every append.
type MockCounter struct{}

// enforce compilation error
var _ Extension = (*MockCounter)(nil)

// NewMockCounter creates the extension
func NewMockCounter() *MockCounter {
	return &MockCounter{}
}

func (x *MockCounter) CanExtend(target *Blueprint) bool {
	return target.HasMethod("append")
}

func (x *MockCounter) Apply(target *Blueprint) error {
	increment, err := NewMethod(func(obj *Object, _ ...any) (any, error) {
		count, _ := obj.Get("append_count")
		return nil, obj.Update("append_count", count.(int)+1)
	})
	if err != nil {
		return err
	}
	if err := target.Set("increment_append_count", increment); err != nil {
		return err
	}
	if err := target.Wrap(InitMethod, BeforeFunc(func(inv *Invocation) error {
		return inv.Object().Set("append_count", 0)
	})); err != nil {
		return err
	}
	return target.Wrap("append", BeforeFunc(func(inv *Invocation) error {
		_, err := inv.Object().Call("increment_append_count")
		return err
	}))
}

// MockAudit records every append in the instance extension data pocket.
// It only wraps, installing no member.
type MockAudit struct{}

// enforce compilation error
var _ Extension = (*MockAudit)(nil)

// NewMockAudit creates the extension
func NewMockAudit() *MockAudit {
	return &MockAudit{}
}

func (x *MockAudit) CanExtend(target *Blueprint) bool {
	return target.HasMethod("append")
}

func (x *MockAudit) Apply(target *Blueprint) error {
	return target.Wrap("append", AfterFunc(func(inv *Invocation) error {
		pocket := inv.Object().ExtensionData()
		trail, _ := pocket["audit_trail"].([]any)
		pocket["audit_trail"] = append(trail, inv.Args()[0])
		return nil
	}))
}

// MockConflicting installs a member under a name the base already holds.
type MockConflicting struct{}

// enforce compilation error
var _ Extension = (*MockConflicting)(nil)

// NewMockConflicting creates the extension
func NewMockConflicting() *MockConflicting {
	return &MockConflicting{}
}

func (x *MockConflicting) CanExtend(*Blueprint) bool {
	return true
}

func (x *MockConflicting) Apply(target *Blueprint) error {
	return target.Set("capacity", 2048)
}

// MockRejecting declines every blueprint.
type MockRejecting struct{}

// enforce compilation error
var _ Extension = (*MockRejecting)(nil)

// NewMockRejecting creates the extension
func NewMockRejecting() *MockRejecting {
	return &MockRejecting{}
}

func (x *MockRejecting) CanExtend(*Blueprint) bool {
	return false
}

func (x *MockRejecting) Apply(*Blueprint) error {
	return nil
}

// MockFuncExtension adapts two plain functions into an extension. Handy
// for scenarios probing the engine from inside Apply.
type MockFuncExtension struct {
	canExtend func(target *Blueprint) bool
	apply     func(target *Blueprint) error
}

// enforce compilation error
var _ Extension = (*MockFuncExtension)(nil)

// NewMockFuncExtension creates the extension
func NewMockFuncExtension(canExtend func(target *Blueprint) bool, apply func(target *Blueprint) error) *MockFuncExtension {
	return &MockFuncExtension{
		canExtend: canExtend,
		apply:     apply,
	}
}

func (x *MockFuncExtension) CanExtend(target *Blueprint) bool {
	if x.canExtend == nil {
		return true
	}
	return x.canExtend(target)
}

func (x *MockFuncExtension) Apply(target *Blueprint) error {
	if x.apply == nil {
		return nil
	}
	return x.apply(target)
}

// MockFailing accepts every blueprint and fails while applying.
type MockFailing struct {
	err error
}

// enforce compilation error
var _ Extension = (*MockFailing)(nil)

// NewMockFailing creates the extension
func NewMockFailing(err error) *MockFailing {
	return &MockFailing{err: err}
}

func (x *MockFailing) CanExtend(*Blueprint) bool {
	return true
}

func (x *MockFailing) Apply(*Blueprint) error {
	return x.err
}

// instrumentFailingMeter fails the creation of the instruments listed in
// failures and delegates everything else to the embedded meter.
type instrumentFailingMeter struct {
	otelmetric.Meter
	failures map[string]error
}

func (m instrumentFailingMeter) Int64ObservableCounter(name string, options ...otelmetric.Int64ObservableCounterOption) (otelmetric.Int64ObservableCounter, error) {
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	return m.Meter.Int64ObservableCounter(name, options...)
}

// registerCallbackFailingMeter fails every callback registration and
// delegates everything else to the embedded meter.
type registerCallbackFailingMeter struct {
	otelmetric.Meter
	err error
}

func (m registerCallbackFailingMeter) RegisterCallback(otelmetric.Callback, ...otelmetric.Observable) (otelmetric.Registration, error) {
	return nil, m.err
}
