package tui

import "time"

// TickMsg triggers the next display refresh.
type TickMsg time.Time
