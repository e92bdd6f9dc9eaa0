package overlay

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/Carmen-Shannon/spaces/common"
	"github.com/Carmen-Shannon/spaces/engine/graphics"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/inkyblackness/imgui-go/v4"
)

//go:embed overlay.wgsl
var overlayShaderSource string

// drawDataRenderer turns finalized UI draw data into GPU commands. It
// owns the overlay pipeline, the font atlas, and the bindings of every
// registered texture. Vertex and index buffers are rebuilt each frame;
// the previous frame's buffers are released at the start of the next
// render, after the GPU is done with them.
type drawDataRenderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	pipeline      *wgpu.RenderPipeline
	uniformBuffer *wgpu.Buffer
	sampler       *wgpu.Sampler
	commonGroup   *wgpu.BindGroup
	textureLayout *wgpu.BindGroupLayout

	fontTexture *wgpu.Texture

	bindings   map[imgui.TextureID]*wgpu.BindGroup
	views      []*wgpu.TextureView
	nextHandle imgui.TextureID

	frameBuffers []*wgpu.Buffer
}

// newDrawDataRenderer builds the overlay pipeline against the given
// surface format and uploads the font atlas. The atlas receives the
// first texture handle; user textures follow.
func newDrawDataRenderer(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat, io imgui.IO) (*drawDataRenderer, error) {
	r := &drawDataRenderer{
		device:     device,
		queue:      queue,
		bindings:   make(map[imgui.TextureID]*wgpu.BindGroup),
		nextHandle: 1,
	}

	if err := r.initPipeline(format); err != nil {
		r.release()
		return nil, err
	}
	if err := r.initFontAtlas(format, io); err != nil {
		r.release()
		return nil, err
	}
	return r, nil
}

func (r *drawDataRenderer) initPipeline(format wgpu.TextureFormat) error {
	shader, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Overlay Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: overlayShaderSource},
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay shader module: %w", err)
	}
	defer shader.Release()

	commonEntries := make([]wgpu.BindGroupLayoutEntry, 2)
	commonEntries[0].Binding = 0
	commonEntries[0].Visibility = wgpu.ShaderStageVertex
	commonEntries[0].Buffer.Type = wgpu.BufferBindingTypeUniform
	commonEntries[1].Binding = 1
	commonEntries[1].Visibility = wgpu.ShaderStageFragment
	commonEntries[1].Sampler.Type = wgpu.SamplerBindingTypeFiltering

	commonLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Overlay Common Bind Group Layout",
		Entries: commonEntries,
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay common bind group layout: %w", err)
	}
	defer commonLayout.Release()

	textureEntries := make([]wgpu.BindGroupLayoutEntry, 1)
	textureEntries[0].Binding = 0
	textureEntries[0].Visibility = wgpu.ShaderStageFragment
	textureEntries[0].Texture.SampleType = wgpu.TextureSampleTypeFloat
	textureEntries[0].Texture.ViewDimension = wgpu.TextureViewDimension2D

	r.textureLayout, err = r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Overlay Texture Bind Group Layout",
		Entries: textureEntries,
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay texture bind group layout: %w", err)
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Overlay Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{commonLayout, r.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Overlay Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(vertexSize),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(posOffset), ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(uvOffset), ShaderLocation: 1},
					{Format: wgpu.VertexFormatUnorm8x4, Offset: uint64(colOffset), ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay render pipeline: %w", err)
	}

	r.uniformBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Overlay Uniform Buffer",
		Size:  64,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay uniform buffer: %w", err)
	}

	r.sampler, err = r.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Overlay Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay sampler: %w", err)
	}

	r.commonGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Overlay Common Bind Group",
		Layout: commonLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: r.uniformBuffer, Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, Sampler: r.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create overlay common bind group: %w", err)
	}
	return nil
}

func (r *drawDataRenderer) initFontAtlas(format wgpu.TextureFormat, io imgui.IO) error {
	image := io.Fonts().TextureDataRGBA32()
	pixels := unsafe.Slice((*byte)(image.Pixels), image.Width*image.Height*4)

	tex, err := graphics.WriteTexture(format, r.device, r.queue, "Overlay Font Atlas", common.TextureStagingData{
		Pixels: pixels,
		Width:  uint32(image.Width),
		Height: uint32(image.Height),
	})
	if err != nil {
		return fmt.Errorf("failed to upload overlay font atlas: %w", err)
	}
	r.fontTexture = tex

	handle, err := r.registerTexture("Overlay Font Atlas", tex)
	if err != nil {
		return err
	}
	io.Fonts().SetTextureID(handle)
	return nil
}

// registerTexture creates the per-texture binding and assigns the next
// opaque handle.
func (r *drawDataRenderer) registerTexture(label string, texture *wgpu.Texture) (imgui.TextureID, error) {
	view, err := texture.CreateView(nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create view for texture %q: %w", label, err)
	}

	group, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: r.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
		},
	})
	if err != nil {
		view.Release()
		return 0, fmt.Errorf("failed to create bind group for texture %q: %w", label, err)
	}

	handle := r.nextHandle
	r.nextHandle++
	r.bindings[handle] = group
	r.views = append(r.views, view)
	return handle, nil
}

// render records the draw lists into an open render pass. Geometry is in
// logical coordinates; clip rectangles are scaled to framebuffer pixels.
func (r *drawDataRenderer) render(draw imgui.DrawData, displayWidth, displayHeight, fbScale float32, fbWidth, fbHeight uint32, pass *wgpu.RenderPassEncoder) error {
	for _, buf := range r.frameBuffers {
		buf.Release()
	}
	r.frameBuffers = r.frameBuffers[:0]

	if !draw.Valid() || displayWidth <= 0 || displayHeight <= 0 {
		return nil
	}

	projection := orthographicProjection(displayWidth, displayHeight)
	r.queue.WriteBuffer(r.uniformBuffer, 0, common.SliceToBytes(projection[:]))

	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.commonGroup, nil)

	indexFormat := wgpu.IndexFormatUint16
	if imgui.IndexBufferLayout() == 4 {
		indexFormat = wgpu.IndexFormatUint32
	}

	for _, list := range draw.CommandLists() {
		vertexPtr, vertexLen := list.VertexBuffer()
		indexPtr, indexLen := list.IndexBuffer()

		vertexBuffer, err := r.uploadFrameData("Overlay Vertex Buffer", wgpu.BufferUsageVertex, vertexPtr, vertexLen)
		if err != nil {
			return err
		}
		indexBuffer, err := r.uploadFrameData("Overlay Index Buffer", wgpu.BufferUsageIndex, indexPtr, indexLen)
		if err != nil {
			return err
		}

		pass.SetVertexBuffer(0, vertexBuffer, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(indexBuffer, indexFormat, 0, wgpu.WholeSize)

		firstIndex := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				firstIndex += cmd.ElementCount()
				continue
			}

			group, ok := r.bindings[cmd.TextureID()]
			if !ok {
				return fmt.Errorf("draw command references unregistered texture handle %v", cmd.TextureID())
			}
			pass.SetBindGroup(1, group, nil)

			if setScissor(pass, cmd.ClipRect(), fbScale, fbWidth, fbHeight) {
				pass.DrawIndexed(uint32(cmd.ElementCount()), 1, uint32(firstIndex), 0, 0)
			}
			firstIndex += cmd.ElementCount()
		}
	}
	return nil
}

// uploadFrameData copies one frame's worth of geometry into a fresh GPU
// buffer. Lengths are padded to the 4-byte copy alignment.
func (r *drawDataRenderer) uploadFrameData(label string, usage wgpu.BufferUsage, ptr unsafe.Pointer, length int) (*wgpu.Buffer, error) {
	padded := (length + 3) &^ 3
	data := make([]byte, padded)
	copy(data, unsafe.Slice((*byte)(ptr), length))

	buffer, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(padded),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buffer, 0, data)
	r.frameBuffers = append(r.frameBuffers, buffer)
	return buffer, nil
}

// setScissor applies a clip rectangle in framebuffer pixels and reports
// whether any area remains to draw.
func setScissor(pass *wgpu.RenderPassEncoder, clip imgui.Vec4, scale float32, fbWidth, fbHeight uint32) bool {
	x := int32(clip.X * scale)
	y := int32(clip.Y * scale)
	maxX := int32(clip.Z * scale)
	maxY := int32(clip.W * scale)

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if maxX > int32(fbWidth) {
		maxX = int32(fbWidth)
	}
	if maxY > int32(fbHeight) {
		maxY = int32(fbHeight)
	}
	if maxX <= x || maxY <= y {
		return false
	}

	pass.SetScissorRect(uint32(x), uint32(y), uint32(maxX-x), uint32(maxY-y))
	return true
}

// orthographicProjection maps logical coordinates with the origin at the
// top-left to normalized device coordinates, column-major.
func orthographicProjection(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}

func (r *drawDataRenderer) release() {
	for _, buf := range r.frameBuffers {
		buf.Release()
	}
	r.frameBuffers = nil
	for _, group := range r.bindings {
		group.Release()
	}
	r.bindings = nil
	for _, view := range r.views {
		view.Release()
	}
	r.views = nil
	if r.fontTexture != nil {
		r.fontTexture.Release()
		r.fontTexture = nil
	}
	if r.commonGroup != nil {
		r.commonGroup.Release()
		r.commonGroup = nil
	}
	if r.sampler != nil {
		r.sampler.Release()
		r.sampler = nil
	}
	if r.uniformBuffer != nil {
		r.uniformBuffer.Release()
		r.uniformBuffer = nil
	}
	if r.textureLayout != nil {
		r.textureLayout.Release()
		r.textureLayout = nil
	}
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
}
