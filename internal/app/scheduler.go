package app

import statepkg "github.com/kk-code-lab/rfilter/internal/state"

// actionScheduler turns view requests into actions handled by the main loop,
// so redraws and reloads never run inside the operation that asked for them.
type actionScheduler struct {
	dispatch func(statepkg.Action)
}

func (s actionScheduler) ScheduleRedraw(*statepkg.View) {
	s.dispatch(statepkg.RedrawAction{})
}

func (s actionScheduler) ScheduleReload(v *statepkg.View, keepPosition bool) {
	s.dispatch(statepkg.ReloadAction{KeepPosition: keepPosition, Path: v.CurrentPath})
}

// ScheduleFullReload re-reads the directory. Filters are applied while
// reading, so this is the same as a position-keeping reload.
func (s actionScheduler) ScheduleFullReload(v *statepkg.View) {
	s.dispatch(statepkg.ReloadAction{KeepPosition: true, Path: v.CurrentPath})
}
