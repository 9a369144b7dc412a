// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package petest builds small PE images for tests.
//
// Image returns a 64-bit executable with a single code section and no
// resources. WithResources and WriteFile add a resource section to it with
// winres.
package petest

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/tc-hib/winres"
)

const (
	peOffset         = 0x40
	fileAlignment    = 0x200
	sectionAlignment = 0x1000
)

// Image returns a PE32+ image for x64 with one .text section holding a
// single RET instruction. Its headers leave room for one more section
// header.
func Image() []byte {
	opt := pe.OptionalHeader64{
		Magic:                       0x20B,
		MajorLinkerVersion:          14,
		SizeOfCode:                  fileAlignment,
		AddressOfEntryPoint:         sectionAlignment,
		BaseOfCode:                  sectionAlignment,
		ImageBase:                   0x140000000,
		SectionAlignment:            sectionAlignment,
		FileAlignment:               fileAlignment,
		MajorOperatingSystemVersion: 6,
		MajorSubsystemVersion:       6,
		SizeOfImage:                 2 * sectionAlignment,
		SizeOfHeaders:               fileAlignment,
		Subsystem:                   pe.IMAGE_SUBSYSTEM_WINDOWS_CUI,
		SizeOfStackReserve:          0x100000,
		SizeOfStackCommit:           0x1000,
		SizeOfHeapReserve:           0x100000,
		SizeOfHeapCommit:            0x1000,
		NumberOfRvaAndSizes:         16,
	}
	fh := pe.FileHeader{
		Machine:              pe.IMAGE_FILE_MACHINE_AMD64,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(binary.Size(&opt)),
		Characteristics:      pe.IMAGE_FILE_EXECUTABLE_IMAGE | pe.IMAGE_FILE_LARGE_ADDRESS_AWARE,
	}
	text := pe.SectionHeader32{
		Name:             [8]uint8{'.', 't', 'e', 'x', 't'},
		VirtualSize:      1,
		VirtualAddress:   sectionAlignment,
		SizeOfRawData:    fileAlignment,
		PointerToRawData: fileAlignment,
		Characteristics:  pe.IMAGE_SCN_CNT_CODE | pe.IMAGE_SCN_MEM_EXECUTE | pe.IMAGE_SCN_MEM_READ,
	}

	var buf bytes.Buffer
	dos := make([]byte, peOffset)
	dos[0], dos[1] = 'M', 'Z'
	binary.LittleEndian.PutUint32(dos[0x3C:], peOffset)
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")
	binary.Write(&buf, binary.LittleEndian, &fh)
	binary.Write(&buf, binary.LittleEndian, &opt)
	binary.Write(&buf, binary.LittleEndian, &text)
	buf.Write(make([]byte, fileAlignment-buf.Len()))

	code := make([]byte, fileAlignment)
	code[0] = 0xC3 // RET
	buf.Write(code)
	return buf.Bytes()
}

// WithResources returns Image with rs as its resource section.
func WithResources(rs *winres.ResourceSet) ([]byte, error) {
	var out bytes.Buffer
	if err := rs.WriteToEXE(&out, bytes.NewReader(Image())); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteFile writes Image, with rs as its resource section unless rs is
// nil, to a file in a temporary directory and returns the file's path.
func WriteFile(tb testing.TB, rs *winres.ResourceSet) string {
	tb.Helper()
	data := Image()
	if rs != nil {
		var err error
		if data, err = WithResources(rs); err != nil {
			tb.Fatalf("petest: writing resources: %v", err)
		}
	}
	name := filepath.Join(tb.TempDir(), "module.exe")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return name
}
