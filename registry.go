// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import (
	"reflect"

	"github.com/launix-de/NonLockingReadMap"
)

// The registry maps a witness type to its capability definitions.
// Definitions are resolved once per witness and read on every lookup
// afterwards, so the map is read-optimized: reads never block and
// writes rebuild the sorted entry list.

// registration is one registry entry. defs holds a *Definitions[W] for the
// witness W whose type name is key.
type registration struct {
	key  string
	defs any
}

func (r registration) GetKey() string {
	return r.key
}

func (r registration) ComputeSize() uint {
	return 16 + 16 + uint(len(r.key))
}

var registry = NonLockingReadMap.New[registration, string]()

// witnessKey names W in the registry. Instantiations of a parameterized
// witness (StateW[int], StateW[string]) get distinct keys.
func witnessKey[W Witness]() string {
	return reflect.TypeFor[W]().String()
}

// Register binds defs to the witness W, replacing any previous binding.
func Register[W Witness](defs *Definitions[W]) {
	if defs == nil {
		misuse("register of nil definitions for " + witnessKey[W]())
	}
	registry.Set(&registration{key: witnessKey[W](), defs: defs})
}

// Unregister removes the binding of W, if any.
func Unregister[W Witness]() {
	registry.Remove(witnessKey[W]())
}

// Lookup returns the definitions bound to W.
func Lookup[W Witness]() (*Definitions[W], bool) {
	r := registry.Get(witnessKey[W]())
	if r == nil {
		return nil, false
	}
	return r.defs.(*Definitions[W]), true
}

// Instances returns the seedless definitions of the family W, building and
// registering them on first use. Capabilities that need a seed are nil.
func Instances[W Family[W]]() *Definitions[W] {
	if d, ok := Lookup[W](); ok {
		return d
	}
	var w W
	Register(w.Define(None[Erased]()))
	d, _ := Lookup[W]()
	return d
}

// InstancesWith builds the definitions of the family W with seed as the
// default input for capabilities that must run a computation. Seeded
// definitions are not cached.
func InstancesWith[W Family[W]](seed Erased) *Definitions[W] {
	var w W
	return w.Define(Some(seed))
}

// Families lists the registered witness keys in sorted order.
func Families() []string {
	all := registry.GetAll()
	keys := make([]string, 0, len(all))
	for _, r := range all {
		keys = append(keys, r.key)
	}
	return keys
}
