// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"strings"

	"github.com/tc-hib/winres"

	"github.com/gdiutil/gdiutil"
)

// Module is a loaded executable module holding resources.
type Module interface {
	// Resource returns the bytes of resource typ/name in language lang,
	// or an error carrying ERROR_RESOURCE_TYPE_NOT_FOUND,
	// ERROR_RESOURCE_NAME_NOT_FOUND or ERROR_RESOURCE_LANG_NOT_FOUND.
	// The bytes stay valid until Close.
	Resource(typ, name Identifier, lang Lang) ([]byte, error)

	// Close releases the module.
	Close() error
}

// FromSet returns a Module serving the resources of rs.
func FromSet(rs *winres.ResourceSet) Module {
	return &setModule{rs: rs}
}

type setModule struct {
	rs *winres.ResourceSet
}

func (m *setModule) Close() error { return nil }

func (m *setModule) Resource(typ, name Identifier, lang Lang) ([]byte, error) {
	var (
		typeFound, nameFound bool
		data                 []byte
		found                bool
	)
	m.rs.Walk(func(typeID, resID winres.Identifier, langID uint16, d []byte) bool {
		if !sameIdentifier(fromWinres(typeID), typ) {
			return true
		}
		typeFound = true
		if !sameIdentifier(fromWinres(resID), name) {
			return true
		}
		nameFound = true
		switch {
		case lang == AnyLang && langID == uint16(LangNeutral):
			data, found = d, true
			return false
		case lang == AnyLang && !found:
			data, found = d, true
		case lang != AnyLang && langID == uint16(lang):
			data, found = d, true
			return false
		}
		return true
	})

	var code gdiutil.Errno
	switch {
	case found:
		gdiutil.Logger().V(1).Info("res: found resource", "type", typ, "name", name, "size", len(data))
		return data, nil
	case !typeFound:
		code = gdiutil.ERROR_RESOURCE_TYPE_NOT_FOUND
	case !nameFound:
		code = gdiutil.ERROR_RESOURCE_NAME_NOT_FOUND
	default:
		code = gdiutil.ERROR_RESOURCE_LANG_NOT_FOUND
	}
	return nil, gdiutil.NewOpError("FindResource "+typ.String()+"/"+name.String(), code)
}

func fromWinres(id winres.Identifier) Identifier {
	switch id := id.(type) {
	case winres.ID:
		return ID(id)
	case winres.Name:
		return Name(id)
	}
	return nil
}

// toWinres converts id for storing in a winres.ResourceSet. Names are
// upper-cased as resource compilers do.
func toWinres(id Identifier) winres.Identifier {
	switch id := id.(type) {
	case ID:
		return winres.ID(id)
	case Name:
		return winres.Name(strings.ToUpper(string(id)))
	}
	return nil
}

// Set stores data as resource typ/name/lang in rs. It is the counterpart of
// FromSet, used to assemble resource sets for tools and tests.
func Set(rs *winres.ResourceSet, typ, name Identifier, lang Lang, data []byte) error {
	if lang < 0 {
		lang = LangNeutral
	}
	return rs.Set(toWinres(typ), toWinres(name), uint16(lang), data)
}

// Entry describes one resource of a module.
type Entry struct {
	Type Identifier
	Name Identifier
	Lang Lang
	Size int
}

// List returns the resources of rs in the set's order.
func List(rs *winres.ResourceSet) []Entry {
	var entries []Entry
	rs.Walk(func(typeID, resID winres.Identifier, langID uint16, d []byte) bool {
		entries = append(entries, Entry{
			Type: fromWinres(typeID),
			Name: fromWinres(resID),
			Lang: Lang(langID),
			Size: len(d),
		})
		return true
	})
	return entries
}
