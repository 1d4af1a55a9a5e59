// Package sysmon samples host and process resource usage for the dashboard
// footer.
package sysmon

import (
	"context"
	"math"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent   float64 // host, 0.0 .. 100.0
	MemPercent   float64 // host, 0.0 .. 100.0
	ProcessRSS   uint64  // bytes resident for this process
	NumGoroutine int
}

// Source reads raw readings. Errors leave the matching field at zero.
type Source interface {
	CPUPercent(ctx context.Context) (float64, error)
	MemPercent(ctx context.Context) (float64, error)
	ProcessRSS(ctx context.Context) (uint64, error)
}

// Sampler collects Stats from a Source.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler reading from src, or from the host when src
// is nil.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = hostSource{pid: int32(os.Getpid())}
	}
	return &Sampler{src: src}
}

// Sample collects one snapshot. Readings that fail, or fall outside their
// valid range, are reported as zero.
func (s *Sampler) Sample(ctx context.Context) Stats {
	st := Stats{NumGoroutine: runtime.NumGoroutine()}
	if v, err := s.src.CPUPercent(ctx); err == nil {
		st.CPUPercent = clampPercent(v)
	}
	if v, err := s.src.MemPercent(ctx); err == nil {
		st.MemPercent = clampPercent(v)
	}
	if v, err := s.src.ProcessRSS(ctx); err == nil {
		st.ProcessRSS = v
	}
	return st
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0
	}
	return v
}

// hostSource reads gopsutil. CPU uses interval=0 (delta since last call).
type hostSource struct {
	pid int32
}

func (hostSource) CPUPercent(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(pcts) == 0 {
		return 0, err
	}
	return pcts[0], nil
}

func (hostSource) MemPercent(ctx context.Context) (float64, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vmem.UsedPercent, nil
}

func (h hostSource) ProcessRSS(ctx context.Context) (uint64, error) {
	p, err := process.NewProcessWithContext(ctx, h.pid)
	if err != nil {
		return 0, err
	}
	info, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}
