package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ShayCichocki/oulab/internal/anim"
	"github.com/ShayCichocki/oulab/internal/catalog"
	"github.com/ShayCichocki/oulab/internal/config"
	"github.com/ShayCichocki/oulab/internal/countdown"
	"github.com/ShayCichocki/oulab/internal/i18n"
	"github.com/ShayCichocki/oulab/internal/progress"
	"github.com/ShayCichocki/oulab/internal/scheduler"
	"github.com/ShayCichocki/oulab/pkg/models"
)

// frameInterval paces animation frames.
const frameInterval = time.Second / 30

// dateRefreshInterval redraws the date line once the countdown task has ended.
const dateRefreshInterval = time.Minute

// CountdownTickMsg carries a countdown recomputed by the periodic task.
// Generation identifies the task that produced it; stale ones are dropped.
type CountdownTickMsg struct {
	Generation int
	Now        time.Time
	Result     countdown.Result
}

// ConfigReloadedMsg is sent when the config watcher delivers a new config.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// frameMsg advances animations.
type frameMsg time.Time

// dateMsg redraws the view so the date line follows the clock.
type dateMsg time.Time

// Options configures the dashboard. Zero fields take defaults.
type Options struct {
	Target       time.Time
	Locale       i18n.Locale
	TickInterval time.Duration
	Animation    time.Duration

	Progress  *progress.Model
	Catalog   *catalog.Catalog
	Scheduler *scheduler.Scheduler
	Clock     scheduler.Clock
	Logger    *zap.Logger

	// ConfigUpdates delivers reloaded configs, e.g. from config.Watcher.
	ConfigUpdates <-chan *config.Config
}

// App is the bubbletea model for the dashboard.
type App struct {
	// Components
	header    *Header
	footer    *Footer
	gauges    *GaugesView
	route     *RouteView
	tracks    *TracksPanel
	controls  *ControlPanel
	countdown *CountdownCard
	layout    *LayoutManager
	keys      keyMap

	// Data
	progress *progress.Model
	catalog  *catalog.Catalog

	// Settings
	locale    i18n.Locale
	target    time.Time
	interval  time.Duration
	animation time.Duration

	// Animation state
	tweens    map[progress.Metric]anim.Tween
	intro     anim.Tween
	animating bool

	// Countdown state
	sched      *scheduler.Scheduler
	clock      scheduler.Clock
	ticks      chan CountdownTickMsg
	generation int
	result     countdown.Result
	dating     bool

	updates <-chan *config.Config
	logger  *zap.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	// View state
	details  *models.Track
	width    int
	height   int
	quitting bool
}

// NewApp creates the dashboard model. The countdown starts in Init.
func NewApp(opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = scheduler.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.New(scheduler.WithClock(opts.Clock), scheduler.WithLogger(opts.Logger))
	}
	if opts.Progress == nil {
		opts.Progress = progress.New(nil)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if !opts.Locale.Valid() {
		opts.Locale = i18n.English
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Animation < 0 {
		opts.Animation = 0
	}
	if opts.Target.IsZero() {
		opts.Target = config.DefaultTarget()
	}

	keys := defaultKeyMap()
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		header:    NewHeader(),
		footer:    NewFooter(keys),
		gauges:    NewGaugesView(),
		route:     NewRouteView(),
		tracks:    NewTracksPanel(opts.Catalog),
		controls:  NewControlPanel(),
		countdown: NewCountdownCard(),
		layout:    NewLayoutManager(80, 24),
		keys:      keys,

		progress: opts.Progress,
		catalog:  opts.Catalog,

		locale:    opts.Locale,
		target:    opts.Target,
		interval:  opts.TickInterval,
		animation: opts.Animation,

		tweens: make(map[progress.Metric]anim.Tween),

		sched: opts.Scheduler,
		clock: opts.Clock,
		ticks: make(chan CountdownTickMsg, 1),

		updates: opts.ConfigUpdates,
		logger:  opts.Logger,

		ctx:    ctx,
		cancel: cancel,

		width:  80,
		height: 24,
	}
	a.header.SetLocale(a.locale)
	for _, v := range a.progress.Snapshot() {
		a.tweens[v.Metric] = anim.Settled(float64(v.Percent))
	}
	a.intro = anim.Settled(1)
	a.resize()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.replayAnimations()
	a.restartCountdown("start")
	return tea.Batch(a.waitForTick(), a.waitForConfig(), a.startFrames())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case CountdownTickMsg:
		if msg.Generation != a.generation {
			return a, a.waitForTick()
		}
		a.result = msg.Result
		if a.result.Elapsed {
			// The task has ended; nothing else redraws the date.
			return a, tea.Batch(a.waitForTick(), a.startDateRefresh())
		}
		return a, a.waitForTick()

	case dateMsg:
		if !a.result.Elapsed {
			a.dating = false
			return a, nil
		}
		return a, dateTick()

	case ConfigReloadedMsg:
		cmd := a.applyConfig(msg.Config)
		return a, tea.Batch(cmd, a.waitForConfig())

	case SetMetricMsg:
		v, err := a.progress.Set(msg.Metric, msg.Value)
		if err != nil {
			a.footer.SetMessage(err.Error())
			return a, nil
		}
		a.retarget(msg.Metric, v)
		return a, a.startFrames()

	case SetLocaleMsg:
		return a, a.setLocale(msg.Locale)

	case frameMsg:
		if a.settled() {
			a.animating = false
			return a, nil
		}
		return a, frameTick()
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Quit) {
		a.quitting = true
		a.Close()
		return tea.Quit
	}

	// The details overlay captures every other key.
	if a.details != nil {
		if key.Matches(msg, a.keys.Close) {
			a.details = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Help):
		a.footer.ToggleHelp()
		a.resize()

	case key.Matches(msg, a.keys.Focus):
		focusTracks := a.controls.Focused()
		a.controls.SetFocused(!focusTracks)
		a.tracks.SetFocused(focusTracks)

	case key.Matches(msg, a.keys.Up):
		if a.tracks.Focused() {
			a.tracks.MoveUp()
		} else {
			a.controls.MoveUp()
		}

	case key.Matches(msg, a.keys.Down):
		if a.tracks.Focused() {
			a.tracks.MoveDown()
		} else {
			a.controls.MoveDown()
		}

	case key.Matches(msg, a.keys.Decrease):
		return a.adjustSelected(-smallStep)
	case key.Matches(msg, a.keys.Increase):
		return a.adjustSelected(smallStep)
	case key.Matches(msg, a.keys.DecreaseLg):
		return a.adjustSelected(-largeStep)
	case key.Matches(msg, a.keys.IncreaseLg):
		return a.adjustSelected(largeStep)

	case key.Matches(msg, a.keys.Details):
		if !a.tracks.Focused() {
			return nil
		}
		if t, ok := a.tracks.Selected(); ok && t.HasDetails() {
			a.details = &t
		}

	case key.Matches(msg, a.keys.Toggle):
		return a.setLocale(a.locale.Next())
	case key.Matches(msg, a.keys.English):
		return a.setLocale(i18n.English)
	case key.Matches(msg, a.keys.Arabic):
		return a.setLocale(i18n.Arabic)

	case key.Matches(msg, a.keys.Replay):
		a.replayAnimations()
		return a.startFrames()
	}

	return nil
}

// adjustSelected moves the selected slider. Bars fill from the right in
// RTL, so the horizontal keys are mirrored there.
func (a *App) adjustSelected(delta int) tea.Cmd {
	if !a.controls.Focused() {
		return nil
	}
	if a.locale.Direction() == i18n.RTL {
		delta = -delta
	}

	metric := a.controls.Selected()
	v, err := a.progress.Adjust(metric, delta)
	if err != nil {
		a.footer.SetMessage(err.Error())
		return nil
	}
	a.retarget(metric, v)
	a.logger.Debug("slider changed",
		zap.String("metric", string(metric)),
		zap.Int("value", int(v)))
	return a.startFrames()
}

func (a *App) setLocale(l i18n.Locale) tea.Cmd {
	if !a.switchLocale(l) {
		return nil
	}
	a.restartTask("locale")
	a.replayAnimations()
	return a.startFrames()
}

// switchLocale makes l active. It reports false when l is invalid or
// already active.
func (a *App) switchLocale(l i18n.Locale) bool {
	if !l.Valid() || l == a.locale {
		return false
	}
	a.logger.Info("locale changed",
		zap.String("from", string(a.locale)),
		zap.String("to", string(l)))

	a.locale = l
	a.header.SetLocale(l)
	return true
}

// applyConfig applies a reloaded config. Slider positions set by the user
// and the catalog are kept. The countdown task is restarted once: with a
// new func when the target moved, with a new interval when only that
// changed, and unchanged otherwise.
func (a *App) applyConfig(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}

	target, err := cfg.TargetTime()
	if err != nil {
		a.logger.Warn("ignoring reloaded config", zap.Error(err))
		a.footer.SetMessage(err.Error())
		return nil
	}
	locale, err := cfg.LocaleValue()
	if err != nil {
		a.logger.Warn("ignoring reloaded locale", zap.Error(err))
		locale = a.locale
	}

	interval := a.interval
	if cfg.Dashboard.TickInterval > 0 {
		interval = cfg.Dashboard.TickInterval
	}
	if cfg.Dashboard.Animation >= 0 {
		a.animation = cfg.Dashboard.Animation
	}
	a.footer.SetMessage("config reloaded")
	a.logger.Info("config reloaded",
		zap.Time("target", target),
		zap.String("locale", string(locale)),
		zap.Duration("tick_interval", interval))

	localeChanged := a.switchLocale(locale)

	switch {
	case !target.Equal(a.target):
		a.target = target
		a.interval = interval
		a.restartCountdown("config")
	case interval != a.sched.Interval():
		a.interval = interval
		a.changeInterval(interval)
	default:
		a.restartTask("config")
	}

	if localeChanged {
		a.replayAnimations()
		return a.startFrames()
	}
	return nil
}

// restartCountdown replaces the periodic countdown task. The previous task
// is torn down before the new one starts.
func (a *App) restartCountdown(reason string) {
	a.generation++
	gen, target, ticks := a.generation, a.target, a.ticks

	a.result = countdown.Compute(target, a.clock.Now())

	id, err := a.sched.Start(a.ctx, a.interval, func(ctx context.Context, now time.Time) bool {
		r := countdown.Compute(target, now)
		select {
		case ticks <- CountdownTickMsg{Generation: gen, Now: now, Result: r}:
		case <-ctx.Done():
			return false
		}
		// Nothing left to count once the target has passed.
		return !r.Elapsed
	})
	if err != nil {
		a.logger.Error("failed to start countdown", zap.Error(err))
		a.footer.SetMessage(err.Error())
		return
	}
	a.logger.Info("countdown started",
		zap.String("reason", reason),
		zap.String("task_id", id),
		zap.Int("generation", gen),
		zap.Duration("remaining", a.result.Remaining()))
}

// restartTask tears down the countdown task and starts it again with the
// same target and interval.
func (a *App) restartTask(reason string) {
	id, err := a.sched.Restart()
	if errors.Is(err, scheduler.ErrNotConfigured) {
		a.restartCountdown(reason)
		return
	}
	if err != nil {
		a.logger.Error("failed to restart countdown", zap.Error(err))
		a.footer.SetMessage(err.Error())
		return
	}
	a.result = countdown.Compute(a.target, a.clock.Now())
	a.logger.Info("countdown restarted",
		zap.String("reason", reason),
		zap.String("task_id", id),
		zap.Int("generation", a.generation))
}

// changeInterval restarts the countdown task at a new interval.
func (a *App) changeInterval(interval time.Duration) {
	id, err := a.sched.SetInterval(interval)
	if err != nil {
		a.logger.Error("failed to change countdown interval", zap.Error(err))
		a.footer.SetMessage(err.Error())
		return
	}
	a.logger.Info("countdown interval changed",
		zap.String("task_id", id),
		zap.Duration("interval", a.sched.Interval()))
}

// startDateRefresh starts the date redraw loop unless one is running.
func (a *App) startDateRefresh() tea.Cmd {
	if a.dating {
		return nil
	}
	a.dating = true
	return dateTick()
}

func dateTick() tea.Cmd {
	return tea.Tick(dateRefreshInterval, func(t time.Time) tea.Msg {
		return dateMsg(t)
	})
}

func (a *App) waitForTick() tea.Cmd {
	ticks, done := a.ticks, a.ctx.Done()
	return func() tea.Msg {
		select {
		case msg := <-ticks:
			return msg
		case <-done:
			return nil
		}
	}
}

func (a *App) waitForConfig() tea.Cmd {
	if a.updates == nil {
		return nil
	}
	updates, done := a.updates, a.ctx.Done()
	return func() tea.Msg {
		select {
		case cfg, ok := <-updates:
			if !ok {
				return nil
			}
			return ConfigReloadedMsg{Config: cfg}
		case <-done:
			return nil
		}
	}
}

// replayAnimations restarts every gauge from 0.
func (a *App) replayAnimations() {
	now := a.clock.Now()
	for _, v := range a.progress.Snapshot() {
		a.tweens[v.Metric] = anim.New(0, float64(v.Percent), now, a.animation)
	}
	a.intro = anim.New(0, 1, now, a.animation)
}

func (a *App) retarget(metric progress.Metric, v models.Percent) {
	a.tweens[metric] = a.tweens[metric].Retarget(float64(v), a.clock.Now(), a.animation)
}

func (a *App) settled() bool {
	now := a.clock.Now()
	for _, t := range a.tweens {
		if !t.Done(now) {
			return false
		}
	}
	return a.intro.Done(now)
}

// startFrames starts the frame loop unless one is already running.
func (a *App) startFrames() tea.Cmd {
	if a.animating || a.settled() {
		return nil
	}
	a.animating = true
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (a *App) resize() {
	footerHeight := 1
	if a.footer.ShowingFullHelp() {
		footerHeight = 5
	}
	a.layout.SetSize(a.width, a.height)
	a.layout.SetFooterHeight(footerHeight)
	a.header.SetWidth(a.width)
	a.footer.SetWidth(a.width)

	dims := a.layout.Calculate()
	a.gauges.SetWidth(dims.MainWidth)
	a.route.SetWidth(dims.MainWidth)
	a.tracks.SetWidth(dims.MainWidth)
	a.countdown.SetWidth(dims.SideWidth)
	a.controls.SetWidth(dims.SideWidth)
}

// displayed returns the animated value of metric.
func (a *App) displayed(metric progress.Metric, now time.Time) float64 {
	return a.tweens[metric].At(now)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.details != nil {
		return renderDetails(a.locale, *a.details, a.width, a.height)
	}

	now := a.clock.Now()
	dims := a.layout.Calculate()

	main := lipgloss.JoinVertical(lipgloss.Left,
		a.gauges.View(a.locale, GaugeValues{
			Overall: a.displayed(progress.MetricOverall, now),
			Phase1:  a.displayed(progress.MetricPhase1, now),
			Phase2:  a.displayed(progress.MetricPhase2, now),
		}),
		a.route.View(a.locale, a.displayed(progress.MetricRoute, now)),
		a.tracks.View(a.locale, a.intro.At(now)),
	)
	side := lipgloss.JoinVertical(lipgloss.Left,
		a.countdown.View(a.locale, now, a.target, a.result),
		a.controls.View(a.locale, a.progress.Snapshot()),
	)

	var body string
	if dims.Stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, side, main)
	} else {
		body = row(a.locale.Direction(), main, side)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		body,
		a.footer.View(),
	)
}

// Close stops the countdown task and releases pending commands. Safe to
// call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.sched.Stop()
		a.cancel()
		a.logger.Info("dashboard closed")
	})
}

// Locale returns the active locale.
func (a *App) Locale() i18n.Locale {
	return a.locale
}

// Countdown returns the last computed countdown.
func (a *App) Countdown() countdown.Result {
	return a.result
}

// Generation returns the number of countdown tasks started so far.
func (a *App) Generation() int {
	return a.generation
}

// Run runs the dashboard in the alternate screen until the user quits.
func Run(opts Options) error {
	p, app := NewProgram(opts)
	defer app.Close()
	_, err := p.Run()
	return err
}

// NewProgram creates a new bubbletea program for the dashboard.
func NewProgram(opts Options) (*tea.Program, *App) {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, app
}
