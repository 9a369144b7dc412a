// Copyright 2026 The gdiutil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gdiutil/gdiutil/dib"
	"github.com/gdiutil/gdiutil/res"
	"github.com/gdiutil/gdiutil/wic"
)

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources FILE",
		Short: "List the resources of a PE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := res.LoadSet(args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tNAME\tLANG\tSIZE")
			for _, e := range res.List(rs) {
				fmt.Fprintf(tw, "%s\t%s\t0x%04X\t%d\n", res.TypeString(e.Type), e.Name, uint16(e.Lang), e.Size)
			}
			return tw.Flush()
		},
	}
}

// resourceFlags selects one resource of a module.
type resourceFlags struct {
	typ, name string
}

func (f *resourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.typ, "type", "", "resource type: a name, a number, or a predefined type such as RCDATA")
	cmd.Flags().StringVar(&f.name, "name", "", "resource name or number")
}

// open returns a stream over the selected resource of the module at path.
func (f *resourceFlags) open(path string, lang res.Lang) (*res.Stream, error) {
	if f.typ == "" || f.name == "" {
		return nil, errors.New("--type and --name are required")
	}
	m, err := res.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	// The stream holds a copy and stays valid after Close.
	return res.AsStream(res.OpenLang(m, lang, res.ParseType(f.typ), res.ParseIdentifier(f.name)))
}

func newExtractCmd(cfg *Config) *cobra.Command {
	var (
		rf  resourceFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "extract FILE --type T --name N [-o OUT]",
		Short: "Write the bytes of one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.open(args[0], cfg.Language())
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				_, err := s.WriteTo(w)
				return err
			})
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file, - for standard output")
	return cmd
}

func newDecodeCmd(cfg *Config) *cobra.Command {
	var (
		rf       resourceFlags
		file     string
		out      string
		colorKey string
		size     string
	)
	cmd := &cobra.Command{
		Use:   "decode (IN | --file FILE --type T --name N) -o OUT.bmp",
		Short: "Decode a single-frame PNG into a 32 bits/pixel BMP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			switch {
			case file != "" && len(args) == 0:
				s, err := rf.open(file, cfg.Language())
				if err != nil {
					return err
				}
				r = s
			case file == "" && len(args) == 1:
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			default:
				return errors.New("need exactly one of IN or --file")
			}

			src, err := wic.LoadBitmapFromStream(r)
			if err != nil {
				return err
			}
			if size != "" {
				w, h, err := parseSize(size)
				if err != nil {
					return err
				}
				if src, err = wic.Scale(src, w, h); err != nil {
					return err
				}
			}
			b, err := wic.CreateBitmap(src)
			if err != nil {
				return err
			}
			defer b.Release()

			if colorKey != "" {
				key, err := parseColorKey(colorKey)
				if err != nil {
					return err
				}
				keyed, err := keyedCopy(b, key)
				if err != nil {
					return err
				}
				defer keyed.Release()
				b = keyed
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				_, err := b.WriteTo(w)
				return err
			})
		},
	}
	rf.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "PE file to read the PNG resource from")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output BMP file, - for standard output")
	cmd.Flags().StringVar(&colorKey, "colorkey", "", "make pixels of this RRGGBB color transparent")
	cmd.Flags().StringVar(&size, "size", "", "resample to WxH before rasterizing")
	cmd.MarkFlagRequired("output")
	return cmd
}

var openBitmap = dib.Open

// keyedCopy returns a copy of b with the pixels of color key made
// transparent.
func keyedCopy(b *dib.Bitmap, key dib.ColorRef) (*dib.Bitmap, error) {
	h, err := dib.MakeTransparent(b.Handle(), key)
	if err != nil {
		return nil, err
	}
	keyed, err := openBitmap(h)
	if err != nil {
		dib.Delete(h)
		return nil, err
	}
	return keyed, nil
}

func newColorKeyCmd() *cobra.Command {
	var out, key string
	cmd := &cobra.Command{
		Use:   "colorkey IN -o OUT.png --key RRGGBB",
		Short: "Make one color of an image transparent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseColorKey(key)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			src, err := wic.LoadImage(f)
			if err != nil {
				return err
			}
			b, err := wic.CreateBitmap(src)
			if err != nil {
				return err
			}
			defer b.Release()
			if err := dib.MakeTransparentInPlace(b.Handle(), k); err != nil {
				return err
			}
			img, err := b.Image()
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error { return png.Encode(w, img) })
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output PNG file, - for standard output")
	cmd.Flags().StringVar(&key, "key", "", "color to make transparent, as RRGGBB")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("key")
	return cmd
}

// parseSize parses WxH.
func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		width, err = strconv.Atoi(ws)
		if err == nil {
			height, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", s)
	}
	return width, height, nil
}

// writeOutput calls write with the file at path, or with the command's
// output if path is "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
