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

package main

import (
	"errors"
	"os"

	"github.com/tochemey/extendable/blueprint"
	"github.com/tochemey/extendable/log"
)

func main() {
	// use the default log. real-life implement the log interface
	logger := log.DefaultLogger

	// build the base container blueprint. real-life handle the error
	base, err := newHashListBlueprint(logger)
	if err != nil {
		logger.Fatal(err)
	}

	// derive an extended blueprint. the base stays untouched and keeps
	// producing plain containers
	extended, err := base.Extend(NewCountingExtension(), NewAuditExtension())
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("base fingerprint=%016x extended fingerprint=%016x", base.Fingerprint(), extended.Fingerprint())
	logger.Infof("extensions applied: %v", extended.ExtensionNames())

	// introspect the derived blueprint
	descriptor, err := extended.Describe().JSON()
	if err != nil {
		logger.Fatal(err)
	}
	logger.Info(descriptor)

	// create an instance seeded with some values
	instance, err := extended.NewInstance([]any{"alpha", "beta"})
	if err != nil {
		logger.Fatal(err)
	}

	// exercise the container
	if _, err := instance.Call("append", "gamma"); err != nil {
		logger.Fatal(err)
	}
	position, err := instance.Call("index", "beta")
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("index of beta=%d", position)

	// the counting extension tracked every append, seeded ones included
	count, _ := instance.Get("append_count")
	logger.Infof("append count=%d", count)

	// the audit extension kept its trail in the instance pocket
	logger.Infof("audit trail=%v", instance.ExtensionData()["audit_trail"])

	// snapshot the blueprint metrics
	metric := extended.Metric()
	logger.Infof("instances=%d calls=%d methods=%d wraps=%d",
		metric.InstancesCount(), metric.CallsCount(), metric.MethodsCount(), metric.WrapsCount())

	os.Exit(0)
}

// HashList is the host state every container instance operates on: a
// list remembering the insertion index of every value.
type HashList struct {
	values  []any
	indexes map[any]int
}

// NewHashList creates the host state of a fresh instance
func NewHashList() *HashList {
	return &HashList{
		indexes: make(map[any]int),
	}
}

// newHashListBlueprint assembles the container blueprint: an append
// method recording values, an index method resolving them, and an init
// seeding the instance from an optional value list.
func newHashListBlueprint(logger log.Logger) (*blueprint.Blueprint, error) {
	appendMethod, err := blueprint.NewMethod(func(obj *blueprint.Object, args ...any) (any, error) {
		list := obj.Receiver().(*HashList)
		list.values = append(list.values, args[0])
		list.indexes[args[0]] = len(list.values) - 1
		return nil, nil
	}, blueprint.Required("value"))
	if err != nil {
		return nil, err
	}

	indexMethod, err := blueprint.NewMethod(func(obj *blueprint.Object, args ...any) (any, error) {
		list := obj.Receiver().(*HashList)
		position, ok := list.indexes[args[0]]
		if !ok {
			return nil, errors.New("value not found")
		}
		return position, nil
	}, blueprint.Required("value"))
	if err != nil {
		return nil, err
	}

	return blueprint.New("hashlist",
		blueprint.WithLogger(logger),
		blueprint.WithReceiver(func() any { return NewHashList() }),
		blueprint.WithInit(func(obj *blueprint.Object, args ...any) (any, error) {
			if args[0] == nil {
				return nil, nil
			}
			for _, value := range args[0].([]any) {
				if _, err := obj.Call("append", value); err != nil {
					return nil, err
				}
			}
			return nil, nil
		}, blueprint.Optional("values", nil)),
		blueprint.WithMethod("append", appendMethod),
		blueprint.WithMethod("index", indexMethod),
		blueprint.WithAttribute("capacity", 1024),
	)
}

// CountingExtension counts appends per instance: an append_count member
// seeded before construction runs and bumped ahead of every append.
type CountingExtension struct{}

// enforce compilation error
var _ blueprint.Extension = (*CountingExtension)(nil)

// NewCountingExtension creates the extension
func NewCountingExtension() *CountingExtension {
	return &CountingExtension{}
}

func (x *CountingExtension) CanExtend(target *blueprint.Blueprint) bool {
	return target.HasMethod("append")
}

func (x *CountingExtension) Apply(target *blueprint.Blueprint) error {
	increment, err := blueprint.NewMethod(func(obj *blueprint.Object, _ ...any) (any, error) {
		count, _ := obj.Get("append_count")
		return nil, obj.Update("append_count", count.(int)+1)
	})
	if err != nil {
		return err
	}
	if err := target.Set("increment_append_count", increment); err != nil {
		return err
	}
	if err := target.Wrap(blueprint.InitMethod, blueprint.BeforeFunc(func(inv *blueprint.Invocation) error {
		return inv.Object().Set("append_count", 0)
	})); err != nil {
		return err
	}
	return target.Wrap("append", blueprint.BeforeFunc(func(inv *blueprint.Invocation) error {
		_, err := inv.Object().Call("increment_append_count")
		return err
	}))
}

// AuditExtension records every appended value into the instance pocket
// after the append body has run.
type AuditExtension struct{}

// enforce compilation error
var _ blueprint.Extension = (*AuditExtension)(nil)

// NewAuditExtension creates the extension
func NewAuditExtension() *AuditExtension {
	return &AuditExtension{}
}

func (x *AuditExtension) CanExtend(*blueprint.Blueprint) bool {
	return true
}

func (x *AuditExtension) Apply(target *blueprint.Blueprint) error {
	return target.Wrap("append", blueprint.AfterFunc(func(inv *blueprint.Invocation) error {
		pocket := inv.Object().ExtensionData()
		trail, _ := pocket["audit_trail"].([]any)
		pocket["audit_trail"] = append(trail, inv.Args()[0])
		return nil
	}))
}
