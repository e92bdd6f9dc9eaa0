package graphics

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// AdapterDescriptor is a read-only snapshot of one physical adapter's
// identity and capabilities, queried fresh at enumeration time.
type AdapterDescriptor struct {
	// Name is the adapter's device name as reported by the driver.
	Name string

	// Vendor is the vendor name string (may be empty on some backends).
	Vendor string

	// VendorID and DeviceID are the PCI identifiers.
	VendorID uint32
	DeviceID uint32

	// DeviceType classifies the adapter (discrete, integrated, software).
	DeviceType wgpu.AdapterType

	// Backend is the graphics API the adapter is reached through.
	Backend wgpu.BackendType

	// Features lists the optional capabilities the adapter supports.
	Features []wgpu.FeatureName

	// Limits holds the adapter's maximum resource limits.
	Limits wgpu.Limits
}

// EnumerateAdapters takes a fresh snapshot of every adapter currently
// visible to the instance. Each call re-enumerates; nothing is cached, so
// repeated calls with unchanged drivers return identical identities. The
// result has no effect on adapter selection.
//
// Parameters:
//   - instance: the backend instance to enumerate against
//
// Returns:
//   - []AdapterDescriptor: one descriptor per visible adapter
func EnumerateAdapters(instance *wgpu.Instance) []AdapterDescriptor {
	adapters := instance.EnumerateAdapters(nil)
	descs := make([]AdapterDescriptor, 0, len(adapters))
	for _, a := range adapters {
		descs = append(descs, describeAdapter(a.GetInfo(), a.EnumerateFeatures(), a.GetLimits().Limits))
		a.Release()
	}
	return descs
}

// describeAdapter assembles a descriptor from the raw driver reports.
func describeAdapter(info wgpu.AdapterInfo, features []wgpu.FeatureName, limits wgpu.Limits) AdapterDescriptor {
	return AdapterDescriptor{
		Name:       info.Name,
		Vendor:     info.VendorName,
		VendorID:   info.VendorId,
		DeviceID:   info.DeviceId,
		DeviceType: info.AdapterType,
		Backend:    info.BackendType,
		Features:   features,
		Limits:     limits,
	}
}

// LogAdapters writes each adapter's fixed property list to the diagnostic
// sink. Purely informational; selection is driven by the surface-compatible
// high-performance request in NewContext.
//
// Parameters:
//   - log: the diagnostic sink
//   - descs: the adapter snapshot to display
func LogAdapters(log *slog.Logger, descs []AdapterDescriptor) {
	log.Info("vendor legend", "0x10DE", "NVIDIA", "0x1002", "AMD", "0x8086", "Intel")
	for _, d := range descs {
		log.Info("gpu adapter",
			"name", d.Name,
			"vendor", d.Vendor,
			"vendorID", d.VendorID,
			"deviceID", d.DeviceID,
			"deviceType", deviceClassString(d.DeviceType),
			"backend", backendString(d.Backend),
			"features", len(d.Features),
			"maxTextureDimension2D", d.Limits.MaxTextureDimension2D,
			"maxBindGroups", d.Limits.MaxBindGroups,
			"maxBufferSize", d.Limits.MaxBufferSize,
		)
	}
}

// deviceClassString converts the adapter type to a display string.
func deviceClassString(at wgpu.AdapterType) string {
	switch at {
	case wgpu.AdapterTypeDiscreteGPU:
		return "DiscreteGPU"
	case wgpu.AdapterTypeIntegratedGPU:
		return "IntegratedGPU"
	case wgpu.AdapterTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// backendString converts the backend type to a display string.
func backendString(bt wgpu.BackendType) string {
	switch bt {
	case wgpu.BackendTypeWebGPU:
		return "WebGPU"
	case wgpu.BackendTypeD3D11:
		return "D3D11"
	case wgpu.BackendTypeD3D12:
		return "D3D12"
	case wgpu.BackendTypeMetal:
		return "Metal"
	case wgpu.BackendTypeVulkan:
		return "Vulkan"
	case wgpu.BackendTypeOpenGL:
		return "OpenGL"
	case wgpu.BackendTypeOpenGLES:
		return "OpenGLES"
	default:
		return "Unknown"
	}
}
