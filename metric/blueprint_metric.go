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

package metric

import (
	"go.opentelemetry.io/otel/metric"
)

// BlueprintMetric defines the blueprint metrics
type BlueprintMetric struct {
	instancesCount  metric.Int64ObservableCounter
	callsCount      metric.Int64ObservableCounter
	extensionsCount metric.Int64ObservableCounter
	wrapsCount      metric.Int64ObservableCounter
}

// NewBlueprintMetric creates an instance of BlueprintMetric
func NewBlueprintMetric(meter metric.Meter) (*BlueprintMetric, error) {
	// create an instance of BlueprintMetric
	blueprintMetric := new(BlueprintMetric)
	var err error
	// set the instances count instrument
	if blueprintMetric.instancesCount, err = meter.Int64ObservableCounter(
		"blueprint_instances_count",
		metric.WithDescription("Total number of instances created"),
	); err != nil {
		return nil, err
	}
	// set the method calls count instrument
	if blueprintMetric.callsCount, err = meter.Int64ObservableCounter(
		"blueprint_calls_count",
		metric.WithDescription("Total number of method calls dispatched"),
	); err != nil {
		return nil, err
	}
	// set the applied extensions count instrument
	if blueprintMetric.extensionsCount, err = meter.Int64ObservableCounter(
		"blueprint_extensions_count",
		metric.WithDescription("Total number of extensions applied"),
	); err != nil {
		return nil, err
	}
	// set the installed wraps count instrument
	if blueprintMetric.wrapsCount, err = meter.Int64ObservableCounter(
		"blueprint_wraps_count",
		metric.WithDescription("Total number of method wraps installed"),
	); err != nil {
		return nil, err
	}
	return blueprintMetric, nil
}

// InstancesCount returns the total number of instances created
func (x *BlueprintMetric) InstancesCount() metric.Int64ObservableCounter {
	return x.instancesCount
}

// CallsCount returns the total number of method calls dispatched
func (x *BlueprintMetric) CallsCount() metric.Int64ObservableCounter {
	return x.callsCount
}

// ExtensionsCount returns the total number of extensions applied
func (x *BlueprintMetric) ExtensionsCount() metric.Int64ObservableCounter {
	return x.extensionsCount
}

// WrapsCount returns the total number of method wraps installed
func (x *BlueprintMetric) WrapsCount() metric.Int64ObservableCounter {
	return x.wrapsCount
}
