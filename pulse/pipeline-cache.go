package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

type releaser interface {
	Release()
}

// formatCache holds one compiled pipeline per render target format. A
// window usually renders into a single format, more only show up after
// the surface was reconfigured for another adapter.
type formatCache[P releaser] struct {
	build func(format wgpu.TextureFormat) (P, error)
	cache *lru.Cache[wgpu.TextureFormat, P]
}

func newFormatCache[P releaser](size int, build func(format wgpu.TextureFormat) (P, error)) *formatCache[P] {
	cache, _ := lru.NewWithEvict(size, func(format wgpu.TextureFormat, pipeline P) {
		slog.Debug("Release pipeline", slog.Any("format", format))
		pipeline.Release()
	})

	return &formatCache[P]{build: build, cache: cache}
}

// Get returns the pipeline for the format, building it on first use.
// The pipeline is owned by the cache.
func (c *formatCache[P]) Get(format wgpu.TextureFormat) (P, error) {
	if pipeline, ok := c.cache.Get(format); ok {
		return pipeline, nil
	}

	pipeline, err := c.build(format)
	if err != nil {
		var zero P
		return zero, fmt.Errorf("build pipeline for %s: %w", format, err)
	}

	c.cache.Add(format, pipeline)

	return pipeline, nil
}

// Release releases all pipelines. The cache stays usable.
func (c *formatCache[P]) Release() {
	c.cache.Purge()
}

// quadPipeline is the render pipeline of the quad together with the
// layout of its texture bind group.
type quadPipeline struct {
	pipeline      *wgpu.RenderPipeline
	textureLayout *wgpu.BindGroupLayout
}

func (p *quadPipeline) Release() {
	p.textureLayout.Release()
	p.pipeline.Release()
}
