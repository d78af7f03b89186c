package metrics

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/util"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// HostSource samples the local host through gopsutil.
//
// OS and kernel identifiers are read once and reused; everything else is
// queried fresh on every call.
type HostSource struct {
	log logger.Logger

	infoMu sync.Mutex
	info   *host.InfoStat
}

// NewHostSource creates a Source for the machine sysmon runs on.
func NewHostSource(log logger.Logger) *HostSource {
	if log == nil {
		log = logger.Noop()
	}
	return &HostSource{log: log}
}

func (s *HostSource) hostInfo(ctx context.Context) (*host.InfoStat, error) {
	s.infoMu.Lock()
	defer s.infoMu.Unlock()

	if s.info != nil {
		return s.info, nil
	}
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	s.info = info
	return info, nil
}

// OperatingSystem returns the distribution name and version, e.g. "ubuntu 22.04".
func (s *HostSource) OperatingSystem(ctx context.Context) (string, error) {
	info, err := s.hostInfo(ctx)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	return util.OrDefault(name, info.OS), nil
}

// Kernel returns the kernel version string.
func (s *HostSource) Kernel(ctx context.Context) (string, error) {
	info, err := s.hostInfo(ctx)
	if err != nil {
		return "", err
	}
	return info.KernelVersion, nil
}

// CPUUtilization returns the busy fraction since the previous call. The
// first call measures since boot.
func (s *HostSource) CPUUtilization(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, nil
	}
	return pcts[0] / 100, nil
}

// MemoryUtilization returns the used fraction of physical memory.
func (s *HostSource) MemoryUtilization(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent / 100, nil
}

// Uptime returns the time since boot.
func (s *HostSource) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// TotalProcesses returns the number of live processes.
func (s *HostSource) TotalProcesses(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return len(pids), nil
}

// RunningProcesses returns the number of runnable processes.
func (s *HostSource) RunningProcesses(ctx context.Context) (int, error) {
	misc, err := load.MiscWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return misc.ProcsRunning, nil
}

// Processes returns one row per readable process, busiest first.
// Processes that exit while being read are skipped.
func (s *HostSource) Processes(ctx context.Context) ([]ProcessRow, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows := make([]ProcessRow, 0, len(procs))
	skipped := 0
	for _, p := range procs {
		row, ok := readProcess(ctx, p, now)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	if skipped > 0 {
		s.log.Debug("skipped %d unreadable %s", skipped, util.Pluralize(skipped, "process", "processes"))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CPU != rows[j].CPU {
			return rows[i].CPU > rows[j].CPU
		}
		return rows[i].PID < rows[j].PID
	})

	return rows, nil
}

func readProcess(ctx context.Context, p *process.Process, now time.Time) (ProcessRow, bool) {
	cpuPct, err := p.CPUPercentWithContext(ctx)
	if err != nil {
		return ProcessRow{}, false
	}
	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return ProcessRow{}, false
	}

	user, err := p.UsernameWithContext(ctx)
	if err != nil {
		user = "n/a"
	}

	cmdline, err := p.CmdlineWithContext(ctx)
	if err != nil || cmdline == "" {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			return ProcessRow{}, false
		}
		cmdline = "[" + name + "]"
	}

	var uptime time.Duration
	if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 {
		uptime = now.Sub(time.UnixMilli(created))
	}

	return ProcessRow{
		PID:     int(p.Pid),
		User:    user,
		CPU:     cpuPct / 100,
		RAM:     FormatRAM(memInfo.RSS),
		Uptime:  uptime,
		Command: cmdline,
	}, true
}

// FormatRAM renders a resident set size in whole megabytes with thousands
// separators, e.g. 1288490188 -> "1,228".
func FormatRAM(rss uint64) string {
	return humanize.Comma(int64(rss / (1024 * 1024)))
}
