//go:build js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

// setViewport is a no-op in the browser: the js backend has no viewport
// support, a pass always covers its full target.
func setViewport(pass *wgpu.RenderPassEncoder, viewport Rectangle2u) {}

func endPass(pass *wgpu.RenderPassEncoder) error {
	pass.End()
	return nil
}
