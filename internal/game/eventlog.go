package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	eventLogMaxEntries = 6
	eventLogLineHeight = 16
)

// EventEntry is a single line in the event log.
type EventEntry struct {
	Tick    int
	Message string
}

// EventLog is a ring buffer of recent viewer events (modality switches,
// clipboard copies) rendered at the foot of the info panel.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, eventLogMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (el *EventLog) Add(tick int, msg string) {
	el.entries[el.head] = EventEntry{Tick: tick, Message: msg}
	el.head = (el.head + 1) % eventLogMaxEntries
	if el.count < eventLogMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + eventLogMaxEntries) % eventLogMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log inside the info panel, newest entry last, so that
// the block ends at bottomY.
func (el *EventLog) Draw(screen *ebiten.Image, f *faces, panelX, panelW, bottomY int) {
	entries := el.Recent()
	top := bottomY - eventLogMaxEntries*eventLogLineHeight

	// Background strip.
	vector.FillRect(screen, float32(panelX+10), float32(top-4), float32(panelW-20),
		float32(eventLogMaxEntries*eventLogLineHeight+8), color.RGBA{R: 180, G: 180, B: 180, A: 255}, false)

	y := bottomY - len(entries)*eventLogLineHeight
	for i, e := range entries {
		clr := color.Color(colorDarkGrey)
		if i == len(entries)-1 {
			clr = colorBlack
		}
		f.draw(screen, f.small, fmt.Sprintf("%5d  %s", e.Tick, e.Message), float64(panelX+16), float64(y), clr)
		y += eventLogLineHeight
	}
}
