// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/simon-frankau/radiosity/geom"

// Renderer is the external renderer contract of §6, consumed by the raster
// form-factor oracle. It owns a single off-screen framebuffer (colour +
// depth) for its lifetime; Setup configures it, Destroy releases it.
//
// The interactive windowing loop, the on-screen blit and the PNG encoder
// are deliberately not part of this contract (§1): a Renderer need only
// produce pixels for a single render pass on request.
type Renderer interface {
	// Setup configures a resolution x resolution off-screen buffer with
	// depth test, back-face culling, flat shading (no interpolation), a
	// 90 degree FOV perspective projection (near 0.001, far 10) and unit
	// aspect ratio. It fails with ErrRenderContextFailure if the
	// underlying graphics context cannot be created.
	Setup(resolution int) error

	// Clear resets the colour buffer to index 0 (background) and the
	// depth buffer to the far plane.
	Clear()

	// SetModelView installs the model-view transform applied to every
	// subsequent DrawFlatQuad call, until the next SetModelView.
	SetModelView(m Mat4)

	// DrawFlatQuad rasterises the parallelogram v0,v1,v2,v3 (already in
	// world space; SetModelView's transform and the fixed projection are
	// applied internally), flat-shaded in rgb, honouring the depth test
	// and back-face culling.
	DrawFlatQuad(v0, v1, v2, v3 geom.Vertex, rgb [3]byte)

	// ReadPixels returns the current colour buffer as RGBA8, row-major,
	// bottom-left origin (resolution*resolution*4 bytes).
	ReadPixels() []byte

	// Destroy releases the renderer's graphics context. The Renderer
	// must not be used afterwards.
	Destroy()
}
