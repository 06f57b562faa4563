package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/gol-canvas/input"
)

// hudKey shows or hides the HUD; it never reaches the simulation
const hudKey = ebiten.KeyH

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeySpace:  input.KeySpace,
	ebiten.KeyEscape: input.KeyEscape,
}

// buttons is ordered so events come out in the same order every tick
var buttons = []struct {
	mouse  ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonPrimary},
	{ebiten.MouseButtonRight, input.ButtonSecondary},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

// inputSource is the slice of ebiten's polled input state the poller reads
type inputSource interface {
	CursorPosition() (int, int)
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// ebitenInput reads the live ebiten input state
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

// poller turns polled input state into discrete events
type poller struct {
	source      inputSource
	keys        []ebiten.Key
	lastX       int
	lastY       int
	cursorKnown bool
	// hudToggled is set when the HUD key was pressed during the last poll
	hudToggled bool
}

func newPoller(source inputSource) poller {
	return poller{source: source}
}

// poll returns the events that happened since the previous tick
func (p *poller) poll(events []input.Event) []input.Event {
	x, y := p.source.CursorPosition()
	if !p.cursorKnown || x != p.lastX || y != p.lastY {
		p.lastX, p.lastY, p.cursorKnown = x, y, true
		events = append(events, input.PointerMove{Pos: input.Point{X: float64(x), Y: float64(y)}})
	}

	p.hudToggled = false
	p.keys = p.source.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if k == hudKey {
			p.hudToggled = !p.hudToggled
		}
		if key, ok := keyMap[k]; ok {
			events = append(events, input.KeyPress{Key: key})
		}
	}
	p.keys = p.source.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := keyMap[k]; ok {
			events = append(events, input.KeyRelease{Key: key})
		}
	}

	for _, b := range buttons {
		if p.source.IsMouseButtonJustPressed(b.mouse) {
			events = append(events, input.ButtonPress{Button: b.button})
		}
		if p.source.IsMouseButtonJustReleased(b.mouse) {
			events = append(events, input.ButtonRelease{Button: b.button})
		}
	}

	return events
}
