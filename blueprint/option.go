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
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/extendable/hash"
	"github.com/tochemey/extendable/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(bp *Blueprint)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Blueprint)

// Apply applies the Blueprint's option
func (f OptionFunc) Apply(bp *Blueprint) {
	f(bp)
}

// WithReceiver sets the factory producing the host state attached to
// every new instance. Bodies reach it through Object.Receiver.
func WithReceiver(factory func() any) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.receiver = factory
	})
}

// WithInit sets the construction behavior and its parameters. Every
// blueprint carries a construction entry even without this option, so
// extensions can always wrap construction.
func WithInit(fn Func, params ...Param) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.initFn = fn
		bp.initParams = params
	})
}

// WithMethod installs a named method on the base blueprint.
func WithMethod(name string, method *Method) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.pending = append(bp.pending, pendingMember{name: name, value: method, method: true})
	})
}

// WithAttribute installs a named attribute on the base blueprint.
func WithAttribute(name string, value any) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.pending = append(bp.pending, pendingMember{name: name, value: value})
	})
}

// WithLogger sets the blueprint custom log
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.logger = logger
	})
}

// WithHasher sets the custom hasher used to fingerprint the blueprint
// shape at seal time.
func WithHasher(hasher hash.Hasher) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.hasher = hasher
	})
}

// WithMeter sets the OpenTelemetry meter used to expose the blueprint
// counters. Without it no instrument is registered.
func WithMeter(meter otelmetric.Meter) Option {
	return OptionFunc(func(bp *Blueprint) {
		bp.meter = meter
	})
}
