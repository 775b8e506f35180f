package handlers

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/pkg/errno"
)

var startedAt = time.Now()

type HealthReport struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	CpuPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	MemUsedMB     uint64  `json:"mem_used_mb"`
}

// Healthcheck reports liveness plus a host snapshot. Metric failures do not
// fail the probe.
func Healthcheck(ctx context.Context, c *app.RequestContext) {
	report := &HealthReport{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		report.CpuPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		report.MemPercent = vm.UsedPercent
		report.MemUsedMB = vm.Used / 1024 / 1024
	}
	common.SendResponse(c, errno.Success, report)
}
