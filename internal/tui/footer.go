package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fibmodes/internal/sysmon"
)

// FooterModel renders resource usage and the key hints.
type FooterModel struct {
	stats  sysmon.Stats
	keymap KeyMap
}

// NewFooterModel creates a footer listing the bindings of km.
func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{keymap: km}
}

// SetStats replaces the displayed snapshot.
func (f *FooterModel) SetStats(s sysmon.Stats) {
	f.stats = s
}

// View renders two lines: usage, then key hints.
func (f FooterModel) View() string {
	usage := fmt.Sprintf("CPU %5.1f%%  MEM %5.1f%%  RSS %s  goroutines %d",
		f.stats.CPUPercent, f.stats.MemPercent, formatBytes(f.stats.ProcessRSS), f.stats.NumGoroutine)

	hints := make([]string, 0, len(f.keymap.ShortHelp()))
	for _, b := range f.keymap.ShortHelp() {
		h := b.Help()
		hints = append(hints, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return footerDescStyle.Render(usage) + "\n" + strings.Join(hints, footerDescStyle.Render("  •  "))
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
