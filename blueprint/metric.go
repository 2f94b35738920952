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

// Metric defines the blueprint metric
type Metric struct {
	// instancesCount returns the total number of objects instantiated
	instancesCount int64
	// callsCount returns the total number of method calls dispatched
	callsCount int64
	// membersCount returns the total number of members installed
	membersCount int64
	// methodsCount returns the total number of methods installed
	methodsCount int64
	// wrapsCount returns the total number of wraps installed across all methods
	wrapsCount int64
	// extensionsCount returns the total number of extensions applied
	extensionsCount int64
}

// InstancesCount returns the total number of objects instantiated
func (m Metric) InstancesCount() int64 {
	return m.instancesCount
}

// CallsCount returns the total number of method calls dispatched
func (m Metric) CallsCount() int64 {
	return m.callsCount
}

// MembersCount returns the total number of members installed
func (m Metric) MembersCount() int64 {
	return m.membersCount
}

// MethodsCount returns the total number of methods installed
func (m Metric) MethodsCount() int64 {
	return m.methodsCount
}

// WrapsCount returns the total number of wraps installed across all methods
func (m Metric) WrapsCount() int64 {
	return m.wrapsCount
}

// ExtensionsCount returns the total number of extensions applied
func (m Metric) ExtensionsCount() int64 {
	return m.extensionsCount
}

// Metric returns a point-in-time snapshot of the blueprint counters. It
// requires no meter; the OTel instruments are a separate concern.
func (bp *Blueprint) Metric() *Metric {
	return &Metric{
		instancesCount:  bp.instancesCount.Load(),
		callsCount:      bp.callsCount.Load(),
		membersCount:    int64(len(bp.order)),
		methodsCount:    int64(len(bp.methods)),
		wrapsCount:      int64(bp.wrapTotal()),
		extensionsCount: int64(len(bp.appliedOrder)),
	}
}
