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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/extendable/errors"
)

func TestNewInstance(t *testing.T) {
	t.Run("With defaults", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)
		require.NotNil(t, instance)
		assert.NotEmpty(t, instance.ID())
		assert.Same(t, bp, instance.Blueprint())

		list, ok := instance.Receiver().(*MockHashList)
		require.True(t, ok)
		assert.Empty(t, list.values)
	})
	t.Run("With construction arguments", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance([]any{5, 3})
		require.NoError(t, err)
		require.NotNil(t, instance)

		list := instance.Receiver().(*MockHashList)
		assert.Equal(t, []any{5, 3}, list.values)

		position, err := instance.Call("index", 3)
		require.NoError(t, err)
		assert.Equal(t, 1, position)
	})
	t.Run("With distinct identities", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		first, err := bp.NewInstance()
		require.NoError(t, err)
		second, err := bp.NewInstance()
		require.NoError(t, err)
		assert.NotEqual(t, first.ID(), second.ID())
		assert.NotSame(t, first.Receiver(), second.Receiver())
	})
	t.Run("With too many arguments", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance([]any{5}, []any{3})
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrInvalidArguments)
		require.Nil(t, instance)
	})
	t.Run("With a failing construction wrap", func(t *testing.T) {
		base := newHashListBlueprint(t)
		derived, err := base.Extend(NewMockFuncExtension(nil, func(target *Blueprint) error {
			return target.Wrap(InitMethod, BeforeFunc(func(*Invocation) error {
				return assert.AnError
			}))
		}))
		require.NoError(t, err)

		instance, err := derived.NewInstance()
		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		require.Nil(t, instance)
	})
	t.Run("With a failing construction body", func(t *testing.T) {
		bp, err := New("container", WithInit(func(*Object, ...any) (any, error) {
			return nil, assert.AnError
		}))
		require.NoError(t, err)

		instance, err := bp.NewInstance()
		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		require.Nil(t, instance)
	})
}

func TestCall(t *testing.T) {
	t.Run("With return value", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		_, err = instance.Call("append", "a")
		require.NoError(t, err)
		position, err := instance.Call("index", "a")
		require.NoError(t, err)
		assert.Equal(t, 0, position)
	})
	t.Run("With unknown method", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		result, err := instance.Call("pop")
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrMethodNotFound)
		assert.ErrorContains(t, err, "method=(pop)")
		require.Nil(t, result)
	})
	t.Run("With missing arguments", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		_, err = instance.Call("append")
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrInvalidArguments)
		assert.ErrorContains(t, err, "method=(append)")
	})
	t.Run("With optional parameters", func(t *testing.T) {
		popMethod, err := NewMethod(func(_ *Object, args ...any) (any, error) {
			return args, nil
		}, Required("value"), Optional("count", 1))
		require.NoError(t, err)

		bp, err := New("container", WithMethod("pop", popMethod))
		require.NoError(t, err)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		// the body observes the bound list, defaults filled in
		result, err := instance.Call("pop", "a")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", 1}, result)

		result, err = instance.Call("pop", "a", 3)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", 3}, result)
	})
	t.Run("With an injected method shadowing", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		shadow, err := NewMethod(func(*Object, ...any) (any, error) {
			return -1, nil
		}, Required("value"))
		require.NoError(t, err)

		require.NoError(t, instance.Update("index", shadow))
		position, err := instance.Call("index", "missing")
		require.NoError(t, err)
		assert.Equal(t, -1, position)

		// other instances keep the blueprint entry
		other, err := bp.NewInstance()
		require.NoError(t, err)
		_, err = other.Call("index", "missing")
		require.Error(t, err)
	})
	t.Run("With a plain member never occluding", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		require.NoError(t, instance.Update("index", "not a method"))
		_, err = instance.Call("append", "a")
		require.NoError(t, err)

		// dispatch still resolves the blueprint method
		position, err := instance.Call("index", "a")
		require.NoError(t, err)
		assert.Equal(t, 0, position)

		// plain member resolution sees the injected value
		value, ok := instance.Get("index")
		require.True(t, ok)
		assert.Equal(t, "not a method", value)
	})
}

func TestObjectMembers(t *testing.T) {
	t.Run("With member resolution", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		capacity, ok := instance.Get("capacity")
		require.True(t, ok)
		assert.Equal(t, 1024, capacity)

		method, ok := instance.Get("append")
		require.True(t, ok)
		assert.IsType(t, new(Method), method)

		_, ok = instance.Get("size")
		assert.False(t, ok)

		assert.True(t, instance.Has("capacity"))
		assert.True(t, instance.Has("append"))
		assert.False(t, instance.Has("size"))
	})
	t.Run("With instance members shadowing attributes", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		require.NoError(t, instance.Update("capacity", 64))
		capacity, ok := instance.Get("capacity")
		require.True(t, ok)
		assert.Equal(t, 64, capacity)

		// the blueprint attribute and sibling instances never change
		other, err := bp.NewInstance()
		require.NoError(t, err)
		capacity, ok = other.Get("capacity")
		require.True(t, ok)
		assert.Equal(t, 1024, capacity)
	})
	t.Run("With write-once injection", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		require.NoError(t, instance.Set("size", 0))
		size, ok := instance.Get("size")
		require.True(t, ok)
		assert.Equal(t, 0, size)

		err = instance.Set("size", 1)
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrMemberConflict)
		assert.ErrorContains(t, err, "held by=(instance)")
	})
	t.Run("With injection conflicting against the blueprint", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		err = instance.Set("capacity", 64)
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrMemberConflict)
		assert.ErrorContains(t, err, "held by=(base)")
	})
	t.Run("With invalid member name", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		err = instance.Set("bad name", 1)
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrInvalidName)
	})
	t.Run("With update of an unknown member", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		err = instance.Update("size", 1)
		require.Error(t, err)
		require.ErrorIs(t, err, gerrors.ErrMemberNotFound)
		assert.ErrorContains(t, err, "member=(size)")
	})
	t.Run("With update of an injected member", func(t *testing.T) {
		bp := newHashListBlueprint(t)
		instance, err := bp.NewInstance()
		require.NoError(t, err)

		require.NoError(t, instance.Set("size", 0))
		require.NoError(t, instance.Update("size", 5))
		size, ok := instance.Get("size")
		require.True(t, ok)
		assert.Equal(t, 5, size)
	})
}

func TestExtensionData(t *testing.T) {
	base := newHashListBlueprint(t)
	derived, err := base.Extend(NewMockAudit())
	require.NoError(t, err)

	first, err := derived.NewInstance()
	require.NoError(t, err)
	second, err := derived.NewInstance()
	require.NoError(t, err)

	_, err = first.Call("append", "a")
	require.NoError(t, err)
	_, err = first.Call("append", "b")
	require.NoError(t, err)
	_, err = second.Call("append", "c")
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b"}, first.ExtensionData()["audit_trail"])
	assert.Equal(t, []any{"c"}, second.ExtensionData()["audit_trail"])

	// the pocket is live: mutations are visible on the next read
	first.ExtensionData()["flushed"] = true
	flushed, ok := first.ExtensionData()["flushed"]
	require.True(t, ok)
	assert.Equal(t, true, flushed)
	_, ok = second.ExtensionData()["flushed"]
	assert.False(t, ok)
}

func TestObjectAppliedExtensions(t *testing.T) {
	base := newHashListBlueprint(t)
	derived, err := base.Extend(NewMockCounter())
	require.NoError(t, err)

	instance, err := derived.NewInstance()
	require.NoError(t, err)

	applied := instance.AppliedExtensions()
	require.NotNil(t, applied)
	assert.Equal(t, 1, applied.Cardinality())
	assert.True(t, applied.Equal(derived.AppliedExtensions()))

	// the returned set is a copy
	applied.Clear()
	assert.Equal(t, 1, instance.AppliedExtensions().Cardinality())
}
