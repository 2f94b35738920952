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

package extension

// Extension defines a pluggable unit of behavior that can be composed onto
// a target to augment it with custom or domain-specific capabilities.
//
// Extensions are authored independently of each other and of the targets
// they decorate. A target first asks every candidate whether it is willing
// to extend it, then hands each accepted candidate a derivation to mutate.
//
// Example use cases:
//   - Counting or auditing calls made to selected methods
//   - Attaching bookkeeping state alongside existing behavior
//   - Enforcing preconditions before a method body runs
//
// Extensions must be stateless: any state they need lives on the target or
// on its instances, never on the extension value itself. The same extension
// value may be applied to many targets concurrently.
type Extension[T any] interface {
	// CanExtend reports whether this extension is able and willing to
	// extend the given target. It must not mutate the target. A target
	// applies an extension only after CanExtend accepts it; a rejection
	// aborts the whole composition.
	CanExtend(target T) bool

	// Apply installs the extension's members and wraps onto the given
	// target. The target handed in is always a private derivation: earlier
	// extensions' contributions are visible, the origin is not touched.
	// Returning an error aborts the composition and discards the
	// derivation.
	Apply(target T) error
}
