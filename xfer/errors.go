// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/simon-frankau/radiosity/render"
)

func degenerateCameraf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", render.ErrDegenerateCamera, io.Sf(format, args...))
}
