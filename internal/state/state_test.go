package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"retirement-countdown/internal/config"
	"retirement-countdown/internal/countdown"
	"retirement-countdown/internal/theme"
)

var target = time.Date(2031, time.March, 31, 0, 0, 0, 0, time.Local)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Target = target
	return cfg
}

func renderOf(t *testing.T, effects []Effect) View {
	t.Helper()

	for _, e := range effects {
		if r, ok := e.(Render); ok {
			return r.View
		}
	}
	t.Fatalf("no render effect in %#v", effects)
	return View{}
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), true)
	require.True(t, s.DarkMode)
	require.Equal(t, Counting, s.Phase)
	require.Equal(t, Point{X: 40, Y: 40}, s.Window)

	v := s.View()
	require.Equal(t, config.AppName, v.Title)
	require.Equal(t, countdown.Placeholder, v.Readout)
	require.Equal(t, Hint, v.Subtitle)
	require.Equal(t, "🌙 Light Mode", v.ToggleLabel)
	require.Equal(t, theme.For(true), v.Palette)
}

func TestTickCounting(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	s, effects := Tick(s, time.Date(2031, time.March, 30, 23, 59, 50, 0, time.Local))

	require.Equal(t, Counting, s.Phase)
	v := renderOf(t, effects)
	require.Equal(t, "0d Days 00:00:10", v.Readout)
	require.Equal(t, Hint, v.Subtitle)
	require.Equal(t, theme.For(false).Countdown, v.ReadoutColor)
}

func TestTickReachedIsSticky(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	s, effects := Tick(s, target)
	require.Equal(t, Reached, s.Phase)

	v := renderOf(t, effects)
	require.Equal(t, countdown.ReachedText, v.Readout)
	require.Equal(t, "Congratulations!", v.Subtitle)
	require.Equal(t, theme.ReachedColor, v.ReadoutColor)

	// Later ticks, including a clock that jumped backwards.
	for _, now := range []time.Time{
		target.Add(time.Hour),
		target.Add(-3 * time.Second),
		target.Add(-48 * time.Hour),
	} {
		s, effects = Tick(s, now)
		require.Equal(t, Reached, s.Phase)
		v = renderOf(t, effects)
		require.Equal(t, countdown.ReachedText, v.Readout)
		require.Equal(t, countdown.ReachedSubtitle, v.Subtitle)
	}
}

func TestToggleTwiceRestoresColors(t *testing.T) {
	t.Parallel()

	now := target.Add(-time.Minute)
	s := New(testConfig(), false)
	s, _ = Tick(s, now)
	original := s.View()

	s, first := ToggleTheme(s, now)
	require.True(t, s.DarkMode)
	require.Contains(t, first, Effect(SavePreference{DarkMode: true}))
	dark := renderOf(t, first)
	require.Equal(t, theme.For(true), dark.Palette)
	require.Equal(t, "🌙 Light Mode", dark.ToggleLabel)
	require.Equal(t, original.Readout, dark.Readout)

	s, second := ToggleTheme(s, now)
	require.False(t, s.DarkMode)
	require.Contains(t, second, Effect(SavePreference{DarkMode: false}))
	require.Equal(t, original, renderOf(t, second))
}

func TestToggleInReachedKeepsReachedColor(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	s, _ = Tick(s, target.Add(time.Second))
	s, effects := ToggleTheme(s, target.Add(-time.Hour))

	v := renderOf(t, effects)
	require.Equal(t, theme.ReachedColor, v.ReadoutColor)
	require.Equal(t, countdown.ReachedSubtitle, v.Subtitle)
	require.Equal(t, theme.For(true).Title, v.Palette.Title)
}

func TestToggleRendersCurrentReadout(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	s, _ = Tick(s, target.Add(-time.Minute))

	// The last tick is stale by the time the key arrives.
	s, effects := ToggleTheme(s, target.Add(-20*time.Second))
	require.Equal(t, "0d Days 00:00:20", s.Readout)
	require.Equal(t, "0d Days 00:00:20", renderOf(t, effects).Readout)

	s, effects = ToggleTheme(s, target)
	require.Equal(t, Reached, s.Phase)
	require.Equal(t, countdown.ReachedText, renderOf(t, effects).Readout)
}

func TestKeyPressed(t *testing.T) {
	t.Parallel()

	now := target.Add(-time.Hour)
	for _, key := range []string{"d", "D"} {
		s, effects := KeyPressed(New(testConfig(), false), key, now)
		require.True(t, s.DarkMode, key)
		require.Len(t, effects, 2)
		require.Equal(t, "0d Days 01:00:00", renderOf(t, effects).Readout)
	}

	s, effects := KeyPressed(New(testConfig(), false), "Space", now)
	require.False(t, s.DarkMode)
	require.Empty(t, effects)
}

func TestDragKeepsOffsetUnderPointer(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	s, effects := PrimaryPressed(s, Point{X: 60, Y: 55})
	require.Empty(t, effects)
	require.True(t, s.Dragging())

	s, effects = Dragged(s, Point{X: 160, Y: 30})
	require.Equal(t, []Effect{MoveWindow{Position: Point{X: 140, Y: 15}}}, effects)
	require.Equal(t, Point{X: 140, Y: 15}, s.Window)

	// Off-screen positions are allowed.
	s, effects = Dragged(s, Point{X: 0, Y: 0})
	require.Equal(t, []Effect{MoveWindow{Position: Point{X: -20, Y: -15}}}, effects)

	// Same position again produces no move.
	s, effects = Dragged(s, Point{X: 0, Y: 0})
	require.Empty(t, effects)

	s, _ = Released(s)
	require.False(t, s.Dragging())

	s, effects = Dragged(s, Point{X: 500, Y: 500})
	require.Empty(t, effects)
	require.Equal(t, Point{X: -20, Y: -15}, s.Window)
}

func TestDragWithoutPressIsNoop(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	next, effects := Dragged(s, Point{X: 300, Y: 300})
	require.Empty(t, effects)
	require.Equal(t, s.Window, next.Window)
}

func TestSecondaryPressAndExit(t *testing.T) {
	t.Parallel()

	s := New(testConfig(), false)
	_, effects := SecondaryPressed(s, Point{X: 12, Y: 34})
	require.Equal(t, []Effect{OpenMenu{At: Point{X: 12, Y: 34}}}, effects)

	_, effects = ExitRequested(s)
	require.Equal(t, []Effect{Quit{}}, effects)
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "counting", Counting.String())
	require.Equal(t, "reached", Reached.String())
}
