// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// Settings holds the interactive shell's mutable configuration. Fields
// are tagged with a short doc string, displayed by "set" with no
// arguments.
type Settings struct {
	Verbose bool `doc:"trace each assembler pass while assembling"`
	Echo    bool `doc:"echo each command before it runs"`
}

func newSettings() *Settings {
	return &Settings{}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(Settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting's current value and doc string to w, in
// declaration order.
func (s *Settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		fmt.Fprintf(w, "    %-10s %-6v (%s)\n", f.name, v, f.doc)
	}
}

// Kind reports the reflect.Kind of the field named by an abbreviated
// key, or reflect.Invalid if no field matches.
func (s *Settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

// Set assigns value to the field named by an abbreviated key.
func (s *Settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if !vIn.Type().ConvertibleTo(f.typ) {
		return errors.New("invalid type")
	}

	reflect.ValueOf(s).Elem().Field(f.index).Set(vIn.Convert(f.typ))
	return nil
}
