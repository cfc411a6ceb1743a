//go:build !js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

func setViewport(pass *wgpu.RenderPassEncoder, viewport Rectangle2u) {
	x, y, w, h := viewport.XYWH()
	pass.SetViewport(float32(x), float32(y), float32(w), float32(h), 0, 1)
}

func endPass(pass *wgpu.RenderPassEncoder) error {
	return pass.End()
}
