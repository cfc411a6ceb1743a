package pulse

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/szark/glm"
)

//go:embed quad.wgsl
var quadShaderCode string

type quadVertex struct {
	Position glm.Vec2f
	UV       glm.Vec2f
}

// QuadVertices covers the full viewport in normalized device coordinates.
// The corners are listed bottom-left, bottom-right, top-right, top-left and
// map onto the full texture.
var QuadVertices = [4]quadVertex{
	{Position: glm.Vec2f{-1, -1}, UV: glm.Vec2f{0, 0}},
	{Position: glm.Vec2f{1, -1}, UV: glm.Vec2f{1, 0}},
	{Position: glm.Vec2f{1, 1}, UV: glm.Vec2f{1, 1}},
	{Position: glm.Vec2f{-1, 1}, UV: glm.Vec2f{0, 1}},
}

// two counter clockwise triangles over QuadVertices
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// QuadCommand draws a texture stretched over the full viewport of a render target.
type QuadCommand struct {
	ctx *Context

	pipelines *formatCache[*quadPipeline]

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
}

func NewQuadCommand(ctx *Context) (*QuadCommand, error) {
	bufVertices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Vertices",
		Contents: wgpu.ToBytes(QuadVertices[:]),
		Usage:    wgpu.BufferUsageVertex,
	})

	if err != nil {
		return nil, initError("create quad vertex buffer", err)
	}

	bufIndices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Quad.Indices",
		Contents: wgpu.ToBytes(quadIndices),
		Usage:    wgpu.BufferUsageIndex,
	})

	if err != nil {
		bufVertices.Release()
		return nil, initError("create quad index buffer", err)
	}

	q := &QuadCommand{
		ctx:         ctx,
		bufVertices: bufVertices,
		bufIndices:  bufIndices,
	}

	q.pipelines = newFormatCache(4, func(format wgpu.TextureFormat) (*quadPipeline, error) {
		return buildQuadPipeline(ctx.Device, format)
	})

	return q, nil
}

// Prepare compiles the pipeline for the given target format ahead of the
// first frame, so shader errors show up during initialization.
func (q *QuadCommand) Prepare(format wgpu.TextureFormat) error {
	_, err := q.pipelines.Get(format)
	if err != nil {
		return initError("compile quad pipeline", err)
	}

	return nil
}

type DrawQuadOptions struct {
	// Viewport to draw into. Defaults to the full target.
	Viewport Rectangle2u

	// Color to clear the target with before drawing
	ClearColor Color
}

// Draw clears the target, then draws source over the viewport.
// The commands are submitted to the queue before Draw returns.
func (q *QuadCommand) Draw(target *RenderTarget, source *Texture, opts DrawQuadOptions) error {
	if source.Released() {
		return fmt.Errorf("draw released texture")
	}

	viewport := opts.Viewport
	if viewport.Empty() {
		viewport = target.Bounds()
	}

	if !target.Bounds().Contains(viewport) {
		return fmt.Errorf("viewport %s not in target %s", viewport, target.Bounds())
	}

	pipeline, err := q.pipelines.Get(target.Format)
	if err != nil {
		return fmt.Errorf("get quad pipeline: %w", err)
	}

	sampler, err := CachedSampler(q.ctx.Device, PixelSampler)
	if err != nil {
		return err
	}

	bindGroup, err := q.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Quad.BindGroup",
		Layout: pipeline.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: source.View(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := q.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Quad"})
	if err != nil {
		return err
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassQuad",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: opts.ClearColor.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	setViewport(pass, viewport)
	pass.SetPipeline(pipeline.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, q.bufVertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(q.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(uint32(len(quadIndices)), 1, 0, 0, 0)

	if err := endPass(pass); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	q.ctx.Submit(cmdBuffer)

	return nil
}

func (q *QuadCommand) Release() {
	q.pipelines.Release()

	if q.bufIndices != nil {
		q.bufIndices.Release()
		q.bufIndices = nil
	}

	if q.bufVertices != nil {
		q.bufVertices.Release()
		q.bufVertices = nil
	}
}

func quadShaderDescriptor() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label:          "Quad.ShaderSource",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: quadShaderCode},
	}
}

func buildQuadPipeline(dev *wgpu.Device, format wgpu.TextureFormat) (*quadPipeline, error) {
	slog.Info(
		"Create RenderPipeline for the canvas quad",
		slog.Any("format", format),
	)

	shader, err := dev.CreateShaderModule(quadShaderDescriptor())
	if err != nil {
		return nil, fmt.Errorf("compile quad shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Quad.%s", format),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(quadVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(quadVertex{}.Position)),
							ShaderLocation: 0,
						},
						{
							// uv
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(quadVertex{}.UV)),
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &wgpu.BlendStateReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build quad pipeline: %w", err)
	}

	// group 0 binds the texture and its sampler
	quad := &quadPipeline{
		pipeline:      pipeline,
		textureLayout: pipeline.GetBindGroupLayout(0),
	}

	return quad, nil
}
