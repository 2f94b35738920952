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

package validation

import (
	"fmt"
)

// idPattern matches identifiers made of word characters with
// non-leading '-' or '_'.
const idPattern = "^[a-zA-Z0-9][a-zA-Z0-9-_]*$"

// maxIDLength defines the maximum length of an identifier
const maxIDLength = 255

// idValidator validates identifiers used to name blueprints,
// members and methods.
type idValidator struct {
	id string
}

var _ Validator = (*idValidator)(nil)

// NewIDValidator creates an instance of the validator
func NewIDValidator(id string) Validator {
	return &idValidator{id: id}
}

// Validate executes the validation
func (x *idValidator) Validate() error {
	if len(x.id) > maxIDLength {
		return fmt.Errorf("identifier=(%s) is too long. Maximum length is %d", x.id, maxIDLength)
	}
	customErr := fmt.Errorf("identifier=(%s) must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')", x.id)
	return NewPatternValidator(idPattern, x.id, customErr).Validate()
}
