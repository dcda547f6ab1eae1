// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// ErrDegenerateCamera is the sentinel wrapped by any error raised when a
// camera's look direction has zero length.
var ErrDegenerateCamera = errors.New("degenerate camera")

// ErrRenderContextFailure is the sentinel wrapped by any error raised when
// a Renderer cannot be set up. It is fatal: per §7 it should abort the run
// rather than be retried.
var ErrRenderContextFailure = errors.New("render context failure")

func degenerateCameraf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateCamera, io.Sf(format, args...))
}

func renderContextFailuref(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrRenderContextFailure, io.Sf(format, args...))
}
