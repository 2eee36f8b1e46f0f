package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/render"
)

func testViewport() render.Viewport {
	return render.NewViewport(80, 24, 400, 600)
}

// TestTranslateKeys verifies the default key bindings
func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
		dir  int
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit, 0},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentStart, 0},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentStart, 0},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause, 0},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart, 0},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute, 0},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentNudge, -1},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentNudge, 1},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentNudge, -1},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), IntentNudge, 1},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone, 0},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone, 0},
	}

	m := NewMapper(nil)
	vp := testViewport()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Translate(tt.ev, vp)
			if got.Type != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Type)
			}
			if got.Dir != tt.dir {
				t.Errorf("Expected dir %d, got %d", tt.dir, got.Dir)
			}
			if got.HasX {
				t.Error("Expected key intents to carry no pointer position")
			}
		})
	}
}

// TestTranslateMouseMotion verifies pointer motion steers to the board coordinate
func TestTranslateMouseMotion(t *testing.T) {
	m := NewMapper(nil)
	vp := testViewport()

	col := vp.OriginX + vp.Cols/2
	got := m.Translate(tcell.NewEventMouse(col, 10, tcell.ButtonNone, tcell.ModNone), vp)

	if got.Type != IntentSteer {
		t.Fatalf("Expected steer, got %s", got.Type)
	}
	if !got.HasX || got.X != vp.ToBoardX(col) {
		t.Errorf("Expected X=%f, got %f (has=%v)", vp.ToBoardX(col), got.X, got.HasX)
	}
}

// TestTranslateMouseClickEdge verifies a held button starts only once
func TestTranslateMouseClickEdge(t *testing.T) {
	m := NewMapper(nil)
	vp := testViewport()

	press := tcell.NewEventMouse(30, 10, tcell.Button1, tcell.ModNone)
	if got := m.Translate(press, vp); got.Type != IntentStart {
		t.Errorf("Expected start on press, got %s", got.Type)
	}

	drag := tcell.NewEventMouse(31, 10, tcell.Button1, tcell.ModNone)
	if got := m.Translate(drag, vp); got.Type != IntentSteer {
		t.Errorf("Expected steer while held, got %s", got.Type)
	}

	release := tcell.NewEventMouse(31, 10, tcell.ButtonNone, tcell.ModNone)
	if got := m.Translate(release, vp); got.Type != IntentSteer {
		t.Errorf("Expected steer on release, got %s", got.Type)
	}

	if got := m.Translate(press, vp); got.Type != IntentStart {
		t.Errorf("Expected start on second press, got %s", got.Type)
	}
}

// TestTranslateMouseClamps verifies pointer positions outside the board clamp to its edges
func TestTranslateMouseClamps(t *testing.T) {
	m := NewMapper(nil)
	vp := testViewport()

	if got := m.Translate(tcell.NewEventMouse(0, 5, tcell.ButtonNone, tcell.ModNone), vp); got.X != 0 {
		t.Errorf("Expected X=0, got %f", got.X)
	}
	if got := m.Translate(tcell.NewEventMouse(79, 5, tcell.ButtonNone, tcell.ModNone), vp); got.X != vp.BoardW {
		t.Errorf("Expected X=%f, got %f", vp.BoardW, got.X)
	}
}

// TestTranslateResize verifies resize events
func TestTranslateResize(t *testing.T) {
	m := NewMapper(nil)
	if got := m.Translate(tcell.NewEventResize(100, 40), testViewport()); got.Type != IntentResize {
		t.Errorf("Expected resize, got %s", got.Type)
	}
}

// TestCustomKeyTable verifies a caller-supplied table replaces the defaults
func TestCustomKeyTable(t *testing.T) {
	table := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{},
		Runes:       map[rune]KeyEntry{'x': {IntentQuit, 0}},
	}
	m := NewMapper(table)
	vp := testViewport()

	if got := m.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), vp); got.Type != IntentQuit {
		t.Errorf("Expected quit, got %s", got.Type)
	}
	if got := m.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), vp); got.Type != IntentNone {
		t.Errorf("Expected none for unbound q, got %s", got.Type)
	}
}
