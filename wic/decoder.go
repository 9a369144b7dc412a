// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gdiutil/gdiutil"
)

// ContainerFormat names an image file format.
type ContainerFormat int

const (
	ContainerFormatUnknown ContainerFormat = iota
	ContainerFormatPNG
	ContainerFormatBMP
	ContainerFormatTIFF
	ContainerFormatWebP
)

var formatNames = [...]string{
	ContainerFormatUnknown: "unknown",
	ContainerFormatPNG:     "png",
	ContainerFormatBMP:     "bmp",
	ContainerFormatTIFF:    "tiff",
	ContainerFormatWebP:    "webp",
}

func (f ContainerFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("ContainerFormat(%d)", int(f))
}

// ParseContainerFormat parses a format name such as "png" or "tif".
func ParseContainerFormat(s string) (ContainerFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png", "apng":
		return ContainerFormatPNG, nil
	case "bmp", "dib":
		return ContainerFormatBMP, nil
	case "tif", "tiff":
		return ContainerFormatTIFF, nil
	case "webp":
		return ContainerFormatWebP, nil
	}
	return ContainerFormatUnknown, fmt.Errorf("wic: unknown container format %q: %w", s, gdiutil.WINCODEC_ERR_COMPONENTNOTFOUND)
}

const pngSignature = "\x89PNG\r\n\x1a\n"

// DetectFormat reports the container format of an image from its first
// bytes.
func DetectFormat(header []byte) ContainerFormat {
	switch {
	case bytes.HasPrefix(header, []byte(pngSignature)):
		return ContainerFormatPNG
	case bytes.HasPrefix(header, []byte("BM")):
		return ContainerFormatBMP
	case bytes.HasPrefix(header, []byte("II*\x00")), bytes.HasPrefix(header, []byte("MM\x00*")):
		return ContainerFormatTIFF
	case len(header) >= 12 && string(header[:4]) == "RIFF" && string(header[8:12]) == "WEBP":
		return ContainerFormatWebP
	}
	return ContainerFormatUnknown
}

// A Decoder reads the frames of one encoded image container.
type Decoder interface {
	// Initialize reads the whole container from r and parses enough of it
	// to count frames.
	Initialize(r io.Reader) error

	// ContainerFormat returns the format the decoder reads.
	ContainerFormat() ContainerFormat

	// FrameCount returns the number of frames in the container.
	FrameCount() (int, error)

	// Frame decodes frame i.
	Frame(i int) (image.Image, error)
}

// NewDecoder returns a decoder for format f.
func NewDecoder(f ContainerFormat) (Decoder, error) {
	switch f {
	case ContainerFormatPNG:
		return &pngDecoder{}, nil
	case ContainerFormatBMP:
		return &stillDecoder{format: f, decode: bmp.Decode, config: bmp.DecodeConfig}, nil
	case ContainerFormatTIFF:
		return &stillDecoder{format: f, decode: tiff.Decode, config: tiff.DecodeConfig}, nil
	case ContainerFormatWebP:
		return &stillDecoder{format: f, decode: webp.Decode, config: webp.DecodeConfig}, nil
	}
	return nil, gdiutil.NewOpError("CreateDecoder "+f.String(), gdiutil.WINCODEC_ERR_COMPONENTNOTFOUND)
}

func badImage(op string, err error) error {
	return fmt.Errorf("wic: %s: %v: %w", op, err, gdiutil.WINCODEC_ERR_BADHEADER)
}

func notInitialized() error {
	return gdiutil.NewOpError("Decoder", gdiutil.WINCODEC_ERR_NOTINITIALIZED)
}

func frameMissing(i, n int) error {
	return fmt.Errorf("wic: frame %d of %d: %w", i, n, gdiutil.WINCODEC_ERR_FRAMEMISSING)
}

// pngDecoder reads PNG and APNG containers. An APNG's frame count comes
// from its animation control chunk; a plain PNG has one frame if it has
// image data.
type pngDecoder struct {
	data   []byte
	frames int
	img    image.Image
}

func (d *pngDecoder) ContainerFormat() ContainerFormat { return ContainerFormatPNG }

func (d *pngDecoder) Initialize(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("wic: reading stream: %w", err)
	}
	n, err := countPNGFrames(data)
	if err != nil {
		return err
	}
	d.data, d.frames, d.img = data, n, nil
	return nil
}

func (d *pngDecoder) FrameCount() (int, error) {
	if d.data == nil {
		return 0, notInitialized()
	}
	return d.frames, nil
}

// Frame decodes the default image. Animation frames beyond the first are
// not rendered.
func (d *pngDecoder) Frame(i int) (image.Image, error) {
	if d.data == nil {
		return nil, notInitialized()
	}
	if i < 0 || i >= d.frames {
		return nil, frameMissing(i, d.frames)
	}
	if i > 0 {
		return nil, gdiutil.NewOpError(fmt.Sprintf("GetFrame %d", i), gdiutil.WINCODEC_ERR_UNSUPPORTEDOPERATION)
	}
	if d.img == nil {
		img, err := png.Decode(bytes.NewReader(d.data))
		if err != nil {
			return nil, badImage("decoding png", err)
		}
		d.img = img
	}
	return d.img, nil
}

// countPNGFrames walks the chunk list of a PNG file.
func countPNGFrames(data []byte) (int, error) {
	if !bytes.HasPrefix(data, []byte(pngSignature)) {
		return 0, badImage("png", fmt.Errorf("missing signature"))
	}
	var (
		p        = data[len(pngSignature):]
		first    = true
		hasIDAT  bool
		actl     bool
		animated uint32
	)
	for len(p) > 0 {
		if len(p) < 12 {
			return 0, badImage("png", io.ErrUnexpectedEOF)
		}
		n := binary.BigEndian.Uint32(p[:4])
		typ := string(p[4:8])
		if uint64(n)+12 > uint64(len(p)) {
			return 0, badImage("png chunk "+typ, io.ErrUnexpectedEOF)
		}
		body := p[8 : 8+n]
		if first && typ != "IHDR" {
			return 0, badImage("png", fmt.Errorf("first chunk is %q", typ))
		}
		first = false
		switch typ {
		case "acTL":
			// An acTL after the image data is not part of an animation.
			if hasIDAT {
				break
			}
			if n < 8 {
				return 0, badImage("png acTL", fmt.Errorf("chunk of %d bytes", n))
			}
			actl, animated = true, binary.BigEndian.Uint32(body[:4])
		case "IDAT":
			hasIDAT = true
		}
		p = p[12+n:]
		if typ == "IEND" {
			break
		}
	}
	switch {
	case actl:
		if uint64(animated) > uint64(^uint(0)>>1) {
			return 0, badImage("png acTL", fmt.Errorf("%d frames", animated))
		}
		return int(animated), nil
	case hasIDAT:
		return 1, nil
	}
	return 0, nil
}

// stillDecoder reads single-image formats through their image package.
type stillDecoder struct {
	format ContainerFormat
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)

	data []byte
	img  image.Image
}

func (d *stillDecoder) ContainerFormat() ContainerFormat { return d.format }

func (d *stillDecoder) Initialize(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("wic: reading stream: %w", err)
	}
	if _, err := d.config(bytes.NewReader(data)); err != nil {
		return badImage("decoding "+d.format.String()+" header", err)
	}
	d.data, d.img = data, nil
	return nil
}

func (d *stillDecoder) FrameCount() (int, error) {
	if d.data == nil {
		return 0, notInitialized()
	}
	return 1, nil
}

func (d *stillDecoder) Frame(i int) (image.Image, error) {
	if d.data == nil {
		return nil, notInitialized()
	}
	if i != 0 {
		return nil, frameMissing(i, 1)
	}
	if d.img == nil {
		img, err := d.decode(bytes.NewReader(d.data))
		if err != nil {
			return nil, badImage("decoding "+d.format.String(), err)
		}
		d.img = img
	}
	return d.img, nil
}
