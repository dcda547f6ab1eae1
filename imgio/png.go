// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imgio writes the final rendered frame to disk. PNG is the only
// format required by §6's external interfaces; everything upstream of this
// package deals in raw RGBA8 byte buffers.
package imgio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WriteRGBA writes a width x height RGBA8 (row-major, top-left origin)
// pixel buffer to path as a PNG, creating any missing parent directory.
func WriteRGBA(path string, width, height int, pixels []byte) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("imgio: WriteRGBA: expected %d bytes for %dx%d RGBA8, got %d",
			width*height*4, width, height, len(pixels))
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("imgio: WriteRGBA: could not create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: WriteRGBA: could not create %s: %w", path, err)
	}
	defer f.Close()

	return png.Encode(f, img)
}

// FlipY reverses the row order of a width x height RGBA8 buffer, for
// converting between the renderer's bottom-left origin (§6) and PNG's
// top-left origin.
func FlipY(width, height int, pixels []byte) []byte {
	out := make([]byte, len(pixels))
	rowBytes := width * 4
	for y := 0; y < height; y++ {
		srcStart := y * rowBytes
		dstStart := (height - 1 - y) * rowBytes
		copy(out[dstStart:dstStart+rowBytes], pixels[srcStart:srcStart+rowBytes])
	}
	return out
}
