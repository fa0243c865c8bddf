// Package checks declares the Jetson SDK probe registry. This file is the
// only place a new check is added; the probe variants and the runner never
// change for it.
package checks

import (
	"time"

	"github.com/edgefleet/jetdiag/internal/cmdexec"
	"github.com/edgefleet/jetdiag/internal/probe"
	"github.com/edgefleet/jetdiag/internal/registry"
)

// Deps are the integration points probes go through to touch the host.
type Deps struct {
	Exec   *cmdexec.Runner
	Loader probe.Loader
	Dpkg   probe.PackageQuerier
}

// Registry builds the full Jetson health-check registry in report order.
func Registry(d Deps) (*registry.Registry, error) {
	run := d.Exec.Run

	return registry.New(
		// L4T itself. Absence of the release file usually means this is not
		// a Jetson at all, which an operator wants flagged, not fatal.
		probe.File("l4t-release", "system", "/etc/nv_tegra_release", probe.Optional),
		probe.Executable("tegrastats", "system", "tegrastats", probe.Optional),
		probe.Executable("jetson-clocks", "system", "jetson_clocks", probe.Optional),

		probe.Executable("nvcc", "cuda", "nvcc", probe.Mandatory),
		probe.Command("nvcc-version", "cuda",
			[]string{"nvcc", "--version"}, run,
			probe.MinVersion(`release (\d+\.\d+)`, "10.2", probe.Mandatory),
			probe.Mandatory),
		probe.File("gpu-device-node", "cuda", "/dev/nvhost-gpu", probe.Optional),

		probe.Library("libcudnn", "cudnn", d.Loader, probe.Mandatory,
			"libcudnn.so.8", "libcudnn.so"),
		probe.File("cudnn-header", "cudnn",
			"/usr/include/cudnn_version.h", probe.Optional),

		probe.Library("libnvinfer", "tensorrt", d.Loader, probe.Mandatory,
			"libnvinfer.so.8", "libnvinfer.so"),
		probe.Executable("trtexec", "tensorrt", "trtexec", probe.Optional),

		// VPI is an optional accelerator; plenty of carrier boards ship
		// without it.
		probe.Library("libnvvpi", "vpi", d.Loader, probe.Optional,
			"libnvvpi.so.1", "libnvvpi.so"),
		probe.Package("vpi-package", "vpi", "vpi1-dev", d.Dpkg, probe.Optional),

		probe.Package("opencv-package", "opencv", "libopencv", d.Dpkg, probe.Mandatory),
		probe.Pattern("opencv-cuda", "opencv",
			[]string{"opencv_version", "--verbose"}, run,
			probe.BuildFlag("Use CUDA", probe.Mandatory),
			probe.Mandatory),

		probe.Executable("gst-inspect", "gstreamer", "gst-inspect-1.0", probe.Mandatory),
		withTimeout(probe.Command("nvargus-plugin", "gstreamer",
			[]string{"gst-inspect-1.0", "nvarguscamerasrc"}, run,
			probe.ZeroExit("nvarguscamerasrc available", probe.Optional),
			probe.Optional), 15*time.Second),

		probe.Executable("docker", "container", "docker", probe.Optional),
		withTimeout(probe.Pattern("nvidia-runtime", "container",
			[]string{"docker", "info"}, run,
			probe.Contains("nvidia", probe.Optional),
			probe.Optional), 20*time.Second),
	)
}

func withTimeout(p probe.Probe, d time.Duration) probe.Probe {
	p.Timeout = d
	return p
}
