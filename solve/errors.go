// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// ErrNotConverged is returned by Solve when the Jacobi iteration fails to
// bring the relative change in scene luminance within the convergence
// target inside the configured iteration cap (§4.G).
var ErrNotConverged = errors.New("radiosity solve: did not converge")

func notConvergedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotConverged, io.Sf(format, args...))
}
