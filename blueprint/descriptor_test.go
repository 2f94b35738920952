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
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Run("With a derived blueprint", func(t *testing.T) {
		base := newHashListBlueprint(t)
		derived, err := base.Extend(NewMockCounter())
		require.NoError(t, err)

		descriptor := derived.Describe()
		require.NotNil(t, descriptor)
		assert.Equal(t, "hashlist", descriptor.Name)
		assert.Len(t, descriptor.Fingerprint, 16)
		assert.Equal(t, []string{"blueprint.mockcounter"}, descriptor.Extensions)
		require.Len(t, descriptor.Members, 5)

		byName := make(map[string]MemberDescriptor, len(descriptor.Members))
		for _, member := range descriptor.Members {
			byName[member.Name] = member
		}

		appendMember := byName["append"]
		assert.Equal(t, KindMethod, appendMember.Kind)
		assert.Equal(t, "base", appendMember.Origin)
		require.Len(t, appendMember.Params, 1)
		assert.Equal(t, "value", appendMember.Params[0].Name)
		assert.Equal(t, []string{"blueprint.mockcounter"}, appendMember.Wraps)

		initMember := byName[InitMethod]
		assert.Equal(t, KindMethod, initMember.Kind)
		assert.Equal(t, []string{"blueprint.mockcounter"}, initMember.Wraps)
		require.Len(t, initMember.Params, 1)
		assert.True(t, initMember.Params[0].Optional)

		capacity := byName["capacity"]
		assert.Equal(t, KindAttribute, capacity.Kind)
		assert.Equal(t, "base", capacity.Origin)
		assert.Empty(t, capacity.Params)

		increment := byName["increment_append_count"]
		assert.Equal(t, KindMethod, increment.Kind)
		assert.Equal(t, "blueprint.mockcounter", increment.Origin)
	})
	t.Run("With fresh descriptors per call", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		first := bp.Describe()
		second := bp.Describe()
		assert.NotSame(t, first, second)

		first.Name = "changed"
		assert.Equal(t, "hashlist", bp.Describe().Name)
	})
	t.Run("With members in installation order", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		descriptor := bp.Describe()
		names := make([]string, 0, len(descriptor.Members))
		for _, member := range descriptor.Members {
			names = append(names, member.Name)
		}
		assert.Equal(t, []string{InitMethod, "append", "index", "capacity"}, names)
	})
}

func TestDescriptorJSON(t *testing.T) {
	base := newHashListBlueprint(t)
	derived, err := base.Extend(NewMockAudit())
	require.NoError(t, err)

	payload, err := derived.Describe().JSON()
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Contains(t, payload, `"name":"hashlist"`)
	assert.Contains(t, payload, `"blueprint.mockaudit"`)
	assert.Contains(t, payload, `"kind":"method"`)

	var decoded Descriptor
	require.NoError(t, jsoniter.UnmarshalFromString(payload, &decoded))
	assert.Equal(t, "hashlist", decoded.Name)
	assert.Len(t, decoded.Members, 4)
	assert.Equal(t, derived.Describe().Fingerprint, decoded.Fingerprint)
}
