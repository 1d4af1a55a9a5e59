package tui

import (
	"time"

	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/sysmon"
)

// Messages posted from dispatch goroutines carry the generation of the
// dispatch that produced them; the model drops anything from an older one.

// ValueShownMsg carries the value handed to the display sink.
type ValueShownMsg struct {
	Generation uint64
	Value      int64
}

// OverlayOpenedMsg is sent when the progress overlay opens.
type OverlayOpenedMsg struct {
	Generation uint64
}

// OverlayProgressMsg carries one progress percentage.
type OverlayProgressMsg struct {
	Generation uint64
	Percent    int
}

// OverlayClosedMsg is sent when the progress overlay closes.
type OverlayClosedMsg struct {
	Generation uint64
}

// DispatchDoneMsg is returned by the dispatch command once Dispatch returns.
type DispatchDoneMsg struct {
	Generation uint64
	Result     orchestration.Result
}

// TickMsg drives periodic footer refreshes.
type TickMsg time.Time

// SysStatsMsg carries a resource snapshot for the footer.
type SysStatsMsg sysmon.Stats
