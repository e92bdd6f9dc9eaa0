package graphics

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestDescribeAdapter(t *testing.T) {
	info := wgpu.AdapterInfo{
		VendorName:  "NVIDIA",
		Name:        "GeForce RTX 3080",
		VendorId:    0x10DE,
		DeviceId:    0x2206,
		AdapterType: wgpu.AdapterTypeDiscreteGPU,
		BackendType: wgpu.BackendTypeVulkan,
	}
	features := []wgpu.FeatureName{wgpu.FeatureNameTimestampQuery}
	limits := wgpu.Limits{MaxTextureDimension2D: 16384}

	desc := describeAdapter(info, features, limits)

	assert.Equal(t, "GeForce RTX 3080", desc.Name)
	assert.Equal(t, "NVIDIA", desc.Vendor)
	assert.Equal(t, uint32(0x10DE), desc.VendorID)
	assert.Equal(t, uint32(0x2206), desc.DeviceID)
	assert.Equal(t, wgpu.AdapterTypeDiscreteGPU, desc.DeviceType)
	assert.Equal(t, wgpu.BackendTypeVulkan, desc.Backend)
	assert.Equal(t, features, desc.Features)
	assert.Equal(t, uint32(16384), desc.Limits.MaxTextureDimension2D)

	// Same driver reports yield the same descriptor.
	assert.Equal(t, desc, describeAdapter(info, features, limits))
}

func TestDeviceClassString(t *testing.T) {
	tests := []struct {
		at   wgpu.AdapterType
		want string
	}{
		{wgpu.AdapterTypeDiscreteGPU, "DiscreteGPU"},
		{wgpu.AdapterTypeIntegratedGPU, "IntegratedGPU"},
		{wgpu.AdapterTypeCPU, "CPU"},
		{wgpu.AdapterTypeUnknown, "Unknown"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, deviceClassString(test.at))
	}
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "Vulkan", backendString(wgpu.BackendTypeVulkan))
	assert.Equal(t, "Metal", backendString(wgpu.BackendTypeMetal))
	assert.Equal(t, "D3D12", backendString(wgpu.BackendTypeD3D12))
	assert.Equal(t, "Unknown", backendString(wgpu.BackendTypeNull))
}
