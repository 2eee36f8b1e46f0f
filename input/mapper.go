package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/render"
)

// Mapper translates tcell events into intents
// Mouse button state is tracked so a held button starts at most once
type Mapper struct {
	table *KeyTable
	held  bool
}

// NewMapper creates a mapper; nil table selects the default bindings
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table}
}

// Translate maps an event to an intent using vp for pointer coordinates
func (m *Mapper) Translate(ev tcell.Event, vp render.Viewport) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.translateKey(ev)
	case *tcell.EventMouse:
		return m.translateMouse(ev, vp)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Mapper) translateKey(ev *tcell.EventKey) Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.table.Runes[ev.Rune()]
	} else {
		entry, ok = m.table.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Dir: entry.Dir}
}

func (m *Mapper) translateMouse(ev *tcell.EventMouse, vp render.Viewport) Intent {
	col, _ := ev.Position()
	x := vp.ToBoardX(col)

	pressed := ev.Buttons()&tcell.Button1 != 0
	edge := pressed && !m.held
	m.held = pressed

	if edge {
		return Intent{Type: IntentStart, X: x, HasX: true}
	}
	return Intent{Type: IntentSteer, X: x, HasX: true}
}
