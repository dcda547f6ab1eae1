// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// ErrDegenerateVector is the sentinel wrapped by any error raised when a
// zero-length vector is asked to normalise or form a basis.
var ErrDegenerateVector = errors.New("degenerate vector")

// ErrDegenerateQuad is the sentinel wrapped by any error raised when a
// parallelogram patch has zero area (its two edge vectors are parallel).
var ErrDegenerateQuad = errors.New("degenerate quad")

func degenerateVectorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateVector, io.Sf(format, args...))
}

func degenerateQuadf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDegenerateQuad, io.Sf(format, args...))
}
