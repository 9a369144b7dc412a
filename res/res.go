// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package res reads resources embedded in executable modules.
//
// A resource is located by type, name and optionally language:
//
//	m, err := res.OpenFile("app.exe")
//	...
//	defer m.Close()
//	d := res.Open(m, res.Name("PNG"), res.ID(101))
//	if !d.Valid() {
//		return d.Err()
//	}
//	s, err := res.AsStream(d)
//
// Resource data needs no release: it stays valid until its module is
// closed.
package res // import "github.com/gdiutil/gdiutil/res"

import (
	"bytes"
	"strconv"
	"strings"
)

// Identifier names a resource type or a resource: either an ID or a Name.
type Identifier interface {
	String() string
	isIdentifier()
}

// ID is an integer resource identifier (MAKEINTRESOURCE).
type ID uint16

// Name is a string resource identifier. Names compare case-insensitively.
type Name string

func (id ID) String() string { return "#" + strconv.Itoa(int(id)) }
func (ID) isIdentifier()     {}

func (n Name) String() string { return string(n) }
func (Name) isIdentifier()    {}

// Predefined resource types.
const (
	RT_CURSOR     ID = 1
	RT_BITMAP     ID = 2
	RT_ICON       ID = 3
	RT_MENU       ID = 4
	RT_DIALOG     ID = 5
	RT_STRING     ID = 6
	RT_RCDATA     ID = 10
	RT_GROUP_ICON ID = 14
	RT_VERSION    ID = 16
	RT_HTML       ID = 23
	RT_MANIFEST   ID = 24
)

// ParseIdentifier parses s as written in resource scripts and tools: a
// decimal number or "#" followed by one is an ID, anything else a Name.
func ParseIdentifier(s string) Identifier {
	t := strings.TrimPrefix(s, "#")
	if n, err := strconv.ParseUint(t, 10, 16); err == nil {
		return ID(n)
	}
	return Name(s)
}

var typeNames = map[ID]string{
	RT_CURSOR:     "CURSOR",
	RT_BITMAP:     "BITMAP",
	RT_ICON:       "ICON",
	RT_MENU:       "MENU",
	RT_DIALOG:     "DIALOG",
	RT_STRING:     "STRING",
	RT_RCDATA:     "RCDATA",
	RT_GROUP_ICON: "GROUP_ICON",
	RT_VERSION:    "VERSION",
	RT_HTML:       "HTML",
	RT_MANIFEST:   "MANIFEST",
}

// ParseType is like ParseIdentifier but also accepts the names of the
// predefined types, with or without the RT_ prefix.
func ParseType(s string) Identifier {
	t := strings.TrimPrefix(strings.ToUpper(s), "RT_")
	for id, name := range typeNames {
		if name == t {
			return id
		}
	}
	return ParseIdentifier(s)
}

// TypeString returns the RT_ name of a predefined type, or typ.String().
func TypeString(typ Identifier) string {
	if id, ok := typ.(ID); ok {
		if name, ok := typeNames[id]; ok {
			return "RT_" + name
		}
	}
	return typ.String()
}

func sameIdentifier(a, b Identifier) bool {
	switch a := a.(type) {
	case ID:
		b, ok := b.(ID)
		return ok && a == b
	case Name:
		b, ok := b.(Name)
		return ok && strings.EqualFold(string(a), string(b))
	}
	return false
}

// Lang is a Windows language identifier (LANGID).
type Lang int32

const (
	// AnyLang selects the resource the way FindResource does: the
	// language-neutral version if there is one, else any.
	AnyLang Lang = -1

	LangNeutral Lang = 0x0000
	LangEnUS    Lang = 0x0409
)

// Data is a located resource. Check Valid before using the bytes.
type Data struct {
	b   []byte
	err error
}

// Open locates the resource typ/name in m.
func Open(m Module, typ, name Identifier) *Data {
	return OpenLang(m, AnyLang, typ, name)
}

// OpenLang locates the resource typ/name with the given language in m.
func OpenLang(m Module, lang Lang, typ, name Identifier) *Data {
	b, err := m.Resource(typ, name, lang)
	if err != nil {
		return &Data{err: err}
	}
	return &Data{b: b}
}

// Valid reports whether the resource was found and loaded.
func (d *Data) Valid() bool { return d.err == nil }

// Err returns the error that made the lookup fail, or nil.
func (d *Data) Err() error { return d.err }

// Bytes returns the resource data. The slice must not be modified.
func (d *Data) Bytes() []byte { return d.b }

// Size returns the size of the resource data in bytes.
func (d *Data) Size() int { return len(d.b) }

// Reader returns a reader over the resource data without copying it.
func (d *Data) Reader() *bytes.Reader { return bytes.NewReader(d.b) }
