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
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const (
	// KindMethod marks a method member in a descriptor.
	KindMethod = "method"
	// KindAttribute marks an attribute member in a descriptor.
	KindAttribute = "attribute"
)

// Descriptor is a point-in-time description of a blueprint shape:
// members in installation order, the extensions composed onto it and
// the shape fingerprint.
type Descriptor struct {
	Name        string             `json:"name"`
	Fingerprint string             `json:"fingerprint"`
	Extensions  []string           `json:"extensions,omitempty"`
	Members     []MemberDescriptor `json:"members"`
}

// MemberDescriptor describes a single blueprint member.
type MemberDescriptor struct {
	Name   string            `json:"name"`
	Kind   string            `json:"kind"`
	Origin string            `json:"origin"`
	Params []ParamDescriptor `json:"params,omitempty"`
	Wraps  []string          `json:"wraps,omitempty"`
}

// ParamDescriptor describes a single method parameter.
type ParamDescriptor struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
	Default  any    `json:"default,omitempty"`
}

// JSON returns the JSON rendering of the descriptor.
func (d *Descriptor) JSON() (string, error) {
	bytea, err := jsoniter.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(bytea), nil
}

// Describe exports the blueprint shape for introspection. Every call
// returns a fresh descriptor; mutating it never reaches the blueprint.
func (bp *Blueprint) Describe() *Descriptor {
	descriptor := &Descriptor{
		Name:        bp.name,
		Fingerprint: fmt.Sprintf("%016x", bp.fingerprint),
		Extensions:  append([]string(nil), bp.appliedOrder...),
		Members:     make([]MemberDescriptor, 0, len(bp.order)),
	}

	for _, name := range bp.order {
		member := MemberDescriptor{
			Name:   name,
			Kind:   KindAttribute,
			Origin: bp.origins[name],
		}
		if method, ok := bp.methods[name]; ok {
			member.Kind = KindMethod
			member.Wraps = append([]string(nil), method.wraps...)
			for _, param := range method.signature.Params() {
				member.Params = append(member.Params, ParamDescriptor{
					Name:     param.Name(),
					Optional: param.IsOptional(),
					Default:  param.Default(),
				})
			}
		}
		descriptor.Members = append(descriptor.Members, member)
	}
	return descriptor
}
