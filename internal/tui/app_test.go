package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ShayCichocki/oulab/internal/config"
	"github.com/ShayCichocki/oulab/internal/countdown"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/internal/scheduler"
	"github.com/ShayCichocki/oulab/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stillTicker never fires; tests only see the immediate first tick.
type stillTicker struct{ ch chan time.Time }

func (t stillTicker) C() <-chan time.Time { return t.ch }
func (t stillTicker) Stop()               {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) NewTicker(time.Duration) scheduler.Ticker {
	return stillTicker{ch: make(chan time.Time)}
}

var testTarget = time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.Clock == nil {
		// 1d 2h 3m 4s before launch.
		opts.Clock = fixedClock{now: testTarget.Add(-(26*time.Hour + 3*time.Minute + 4*time.Second))}
	}
	if opts.Target.IsZero() {
		opts.Target = testTarget
	}
	app := NewApp(opts)
	t.Cleanup(app.Close)
	return app
}

func receiveTick(t *testing.T, app *App) CountdownTickMsg {
	t.Helper()
	select {
	case msg := <-app.ticks:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no countdown tick")
		return CountdownTickMsg{}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = app.Update(msg)
	}
	return cmd
}

func value(t *testing.T, app *App, metric progress.Metric) models.Percent {
	t.Helper()
	v, err := app.progress.Get(metric)
	require.NoError(t, err)
	return v
}

func TestInit_StartsCountdown(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()

	require.NotEmpty(t, app.sched.Active())

	msg := receiveTick(t, app)
	assert.Equal(t, 1, msg.Generation)
	assert.False(t, msg.Result.Elapsed)
	assert.Equal(t, int64(1), msg.Result.Days)
	assert.Equal(t, int64(2), msg.Result.Hours)
	assert.Equal(t, int64(3), msg.Result.Minutes)
	assert.Equal(t, int64(4), msg.Result.Seconds)

	press(app, msg)
	assert.Equal(t, "1d 2h 3m 4s", app.Countdown().String())
	assert.Contains(t, app.View(), "1d 2h 3m 4s")
}

func TestClose_StopsCountdown(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	require.NotEmpty(t, app.sched.Active())

	app.Close()
	app.Close()
	assert.Empty(t, app.sched.Active())
}

func TestQuit_StopsCountdown(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()

	cmd := press(app, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, app.sched.Active())
	assert.Empty(t, app.View())
}

func TestLocaleSwitch_RestartsCountdown(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	first := app.sched.Active()
	press(app, receiveTick(t, app))

	press(app, keyRunes("a"))
	assert.Equal(t, i18n.Arabic, app.Locale())

	second := app.sched.Active()
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
	// Same target, so the restarted task keeps its generation.
	assert.Equal(t, 1, app.Generation())

	msg := receiveTick(t, app)
	assert.Equal(t, 1, msg.Generation)
	press(app, msg)

	// Same locale again is a no-op.
	press(app, keyRunes("a"))
	assert.Equal(t, second, app.sched.Active())

	press(app, keyRunes("e"))
	assert.Equal(t, i18n.English, app.Locale())
	assert.NotEqual(t, second, app.sched.Active())
}

func TestToggleKey_SwitchesLocale(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	first := app.sched.Active()

	press(app, keyRunes("t"))
	assert.Equal(t, i18n.Arabic, app.Locale())
	assert.NotEqual(t, first, app.sched.Active())

	press(app, keyRunes("t"))
	assert.Equal(t, i18n.English, app.Locale())
}

func TestStaleTickIgnored(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	press(app, receiveTick(t, app))

	cfg := config.Default()
	cfg.Dashboard.Target = testTarget.Add(24 * time.Hour).Format(time.RFC3339)
	press(app, ConfigReloadedMsg{Config: cfg})
	require.Equal(t, 2, app.Generation())

	before := app.Countdown()
	press(app, CountdownTickMsg{Generation: 1, Result: countdown.Result{Elapsed: true}})
	assert.Equal(t, before, app.Countdown())
}

func TestElapsedTarget_EndsTask(t *testing.T) {
	app := newTestApp(t, Options{
		Clock: fixedClock{now: testTarget},
	})
	app.Init()

	msg := receiveTick(t, app)
	assert.True(t, msg.Result.Elapsed)
	press(app, msg)

	assert.Eventually(t, func() bool { return app.sched.Active() == "" },
		2*time.Second, 10*time.Millisecond)
	assert.Contains(t, app.View(), "Launched!")
}

func TestSliderKeys(t *testing.T) {
	app := newTestApp(t, Options{})

	press(app, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.Percent(73), value(t, app, progress.MetricOverall))

	press(app, keyRunes("L"), keyRunes("L"), keyRunes("L"))
	assert.Equal(t, models.Percent(100), value(t, app, progress.MetricOverall))

	press(app, tea.KeyMsg{Type: tea.KeyDown}, keyRunes("["))
	assert.Equal(t, models.Percent(78), value(t, app, progress.MetricPhase1))

	press(app, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.Percent(81), value(t, app, progress.MetricRoute))
}

func TestSliderKeys_MirroredInArabic(t *testing.T) {
	app := newTestApp(t, Options{Locale: i18n.Arabic})

	press(app, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.Percent(73), value(t, app, progress.MetricOverall))
}

func TestSliderKeys_IgnoredWhenTracksFocused(t *testing.T) {
	app := newTestApp(t, Options{})

	press(app, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, app.tracks.Focused())
	assert.Equal(t, models.Percent(72), value(t, app, progress.MetricOverall))
}

func TestSetMetricMsg_Clamps(t *testing.T) {
	app := newTestApp(t, Options{})

	press(app, SetMetricMsg{Metric: progress.MetricPhase2, Value: 150})
	assert.Equal(t, models.Percent(100), value(t, app, progress.MetricPhase2))

	press(app, SetMetricMsg{Metric: "bogus", Value: 10})
	assert.Contains(t, app.footer.Message(), "bogus")
}

func TestDetailsOverlay(t *testing.T) {
	app := newTestApp(t, Options{})
	press(app, tea.WindowSizeMsg{Width: 120, Height: 40})

	// The first track is done and has no details.
	press(app, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, app.details)

	// Third preparation track is in progress.
	press(app, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, app.details)
	assert.Equal(t, "Interior design", app.details.Label)
	assert.Contains(t, app.View(), "Interior design")

	// Keys other than close are swallowed.
	press(app, keyRunes("a"))
	assert.Equal(t, i18n.English, app.Locale())

	press(app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, app.details)
}

func TestConfigReload_RestartsCountdown(t *testing.T) {
	updates := make(chan *config.Config, 1)
	app := newTestApp(t, Options{ConfigUpdates: updates})
	app.Init()
	press(app, receiveTick(t, app))

	cfg := config.Default()
	cfg.Dashboard.Target = testTarget.Add(24 * time.Hour).Format(time.RFC3339)
	cfg.Dashboard.Locale = "ar-EG"
	updates <- cfg

	msg := app.waitForConfig()()
	require.IsType(t, ConfigReloadedMsg{}, msg)
	press(app, msg)

	assert.Equal(t, i18n.Arabic, app.Locale())
	assert.Equal(t, 2, app.Generation())
	assert.Equal(t, int64(2), app.Countdown().Days)

	tick := receiveTick(t, app)
	assert.Equal(t, 2, tick.Generation)
	assert.Equal(t, int64(2), tick.Result.Days)
}

func TestConfigReload_IntervalOnly(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	press(app, receiveTick(t, app))
	first := app.sched.Active()
	require.Equal(t, time.Second, app.sched.Interval())

	cfg := config.Default()
	cfg.Dashboard.Target = testTarget.Format(time.RFC3339)
	cfg.Dashboard.TickInterval = 500 * time.Millisecond
	press(app, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, 500*time.Millisecond, app.sched.Interval())
	assert.Equal(t, 1, app.Generation())
	assert.NotEqual(t, first, app.sched.Active())
	assert.Equal(t, 1, receiveTick(t, app).Generation)
}

func TestConfigReload_UnchangedRestartsTask(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	press(app, receiveTick(t, app))
	first := app.sched.Active()

	cfg := config.Default()
	cfg.Dashboard.Target = testTarget.Format(time.RFC3339)
	press(app, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, 1, app.Generation())
	assert.NotEqual(t, first, app.sched.Active())
	assert.Equal(t, time.Second, app.sched.Interval())
}

func TestCountdownCard_UsesTargetDate(t *testing.T) {
	target := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)
	app := newTestApp(t, Options{
		Target: target,
		Clock:  fixedClock{now: target.Add(-time.Hour)},
	})

	assert.Contains(t, app.View(), "Countdown to Launch — Dec 5")
	assert.NotContains(t, app.View(), "Nov 20")

	press(app, keyRunes("a"))
	assert.Contains(t, app.View(), "5 ديسمبر")
}

func TestDateFollowsClockAfterLaunch(t *testing.T) {
	app := newTestApp(t, Options{Clock: fixedClock{now: testTarget}})
	app.Init()

	cmd := press(app, receiveTick(t, app))
	assert.NotNil(t, cmd)
	assert.True(t, app.dating)
	assert.Contains(t, app.View(), "Thursday, November 20, 2025")

	app.clock = fixedClock{now: testTarget.Add(48 * time.Hour)}
	assert.NotNil(t, press(app, dateMsg(testTarget)))
	assert.Contains(t, app.View(), "Saturday, November 22, 2025")
}

func TestConfigReload_InvalidTargetKeepsCountdown(t *testing.T) {
	app := newTestApp(t, Options{})
	app.Init()
	press(app, receiveTick(t, app))

	cfg := config.Default()
	cfg.Dashboard.Target = "soon"
	press(app, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, 1, app.Generation())
	assert.Contains(t, app.footer.Message(), "dashboard.target")
}

func TestReplay_AnimatesFromZero(t *testing.T) {
	clock := fixedClock{now: testTarget.Add(-time.Hour)}
	app := newTestApp(t, Options{Clock: clock, Animation: time.Second})

	app.replayAnimations()
	assert.Equal(t, 0.0, app.displayed(progress.MetricOverall, clock.now))
	assert.Equal(t, 72.0, app.displayed(progress.MetricOverall, clock.now.Add(time.Second)))
	assert.False(t, app.settled())
	assert.NotNil(t, app.startFrames())
	// A loop is already running.
	assert.Nil(t, app.startFrames())
}

func TestNoAnimation_Settled(t *testing.T) {
	app := newTestApp(t, Options{Animation: 0})
	app.replayAnimations()
	assert.True(t, app.settled())
	assert.Nil(t, app.startFrames())
}

func TestView_RendersAllRegions(t *testing.T) {
	app := newTestApp(t, Options{Animation: 0})
	press(app, tea.WindowSizeMsg{Width: 140, Height: 60})

	view := app.View()
	for _, want := range []string{
		"Oulab Dashboard",
		"Overall Project Progress",
		"72%",
		"Bus Preparation",
		"Operational & Executive Plans",
		"Control Panel",
		"Jeddah",
	} {
		assert.Contains(t, view, want)
	}

	press(app, keyRunes("a"))
	view = app.View()
	assert.Contains(t, view, "لوحة مؤشرات أولاب")
	assert.Contains(t, view, "قيد التنفيذ")
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t, Options{})
	assert.False(t, app.footer.ShowingFullHelp())
	press(app, keyRunes("?"))
	assert.True(t, app.footer.ShowingFullHelp())
	assert.True(t, strings.Contains(app.View(), "replay"))
}
