// Package runner is the thin run loop around the pure game core.
//
// A Runner owns the single snake.State of a game, the handle of the tick
// source driving it, and the collaborators that consume its output. Input
// handlers and ticks must be delivered from one goroutine; the Bubble Tea
// update loop does exactly that.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Token is the opaque cancellation handle returned by a TickSource.
// The runner never inspects it; it only hands it back to Stop.
type Token any

// TickSource calls back into the runner periodically.
// Implementations must never deliver overlapping ticks.
type TickSource interface {
	// Start begins delivering ticks every period.
	Start(period time.Duration) Token
	// Stop cancels the ticks started with token. A tick already queued for
	// that token must be dropped.
	Stop(token Token)
}

// Renderer consumes the snapshot emitted each tick.
type Renderer interface {
	Render(f snake.Frame)
}

// ScoreDisplay receives a formatted line whenever the score changes and
// when the game ends.
type ScoreDisplay interface {
	ShowScore(text string)
}

// Recorder stores finished runs.
type Recorder interface {
	RecordRun(res snake.Result) error
}

// Options configures a Runner. Rules, Rand, Ticks, Renderer and Scores are
// required.
type Options struct {
	Rules    snake.Rules
	Period   time.Duration
	Rand     snake.Rand
	Ticks    TickSource
	Renderer Renderer
	Scores   ScoreDisplay
	Recorder Recorder    // Optional
	Logger   *log.Logger // Optional, discards when nil
}

// Runner drives one game.
type Runner struct {
	rules    snake.Rules
	period   time.Duration
	rng      snake.Rand
	ticks    TickSource
	renderer Renderer
	scores   ScoreDisplay
	recorder Recorder
	logger   *log.Logger

	state  snake.State
	frame  snake.Frame
	token  Token
	active bool // Tick source running
	runs   int  // Runs started, for logging
}

// New creates a runner. Call Start to begin the first run.
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		rules:    opts.Rules,
		period:   opts.Period,
		rng:      opts.Rand,
		ticks:    opts.Ticks,
		renderer: opts.Renderer,
		scores:   opts.Scores,
		recorder: opts.Recorder,
		logger:   logger,
	}
}

// ScoreText formats the running score line.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// GameOverText formats the final score line.
func GameOverText(score int) string {
	return fmt.Sprintf("Game Over! Score: %d", score)
}

// Start begins a fresh run: it resets all state, publishes the zero score
// and the initial frame, and (re)starts the tick source.
func (r *Runner) Start() {
	r.stopTicks()

	r.state = snake.NewState(r.rules, r.rng)
	r.runs++
	r.logger.Info("run started",
		"run", r.runs,
		"board", fmt.Sprintf("%dx%d", r.rules.Grid.Cols(), r.rules.Grid.Rows()),
		"food", r.state.Food,
	)

	r.scores.ShowScore(ScoreText(0))
	r.emit(r.state.Frame(snake.EventNone))
	r.startTicks()
}

// Tick runs one update step. It is the callback of the tick source.
func (r *Runner) Tick() snake.Frame {
	if r.state.Status != snake.StatusRunning {
		return r.frame
	}

	next, f := snake.Step(r.state, r.rules, r.rng)
	r.state = next

	switch f.Event {
	case snake.EventAte:
		r.logger.Debug("food eaten", "score", f.Score, "length", len(f.Body), "food", f.Food)
		r.scores.ShowScore(ScoreText(f.Score))
	case snake.EventOver:
		r.stopTicks()
		r.logger.Info("game over",
			"score", f.Score,
			"length", len(f.Body),
			"ticks", f.Tick,
			"cause", string(f.Collision),
			"crash", f.Crash,
		)
		r.scores.ShowScore(GameOverText(f.Score))
		r.record()
	}

	r.emit(f)
	return f
}

// Direction forwards a directional key to the input mapper. The change is
// applied by the next tick.
func (r *Runner) Direction(d snake.Direction) bool {
	if r.state.Status == snake.StatusOver {
		return false
	}
	return r.state.OnDirectionKey(d)
}

// Pause stops the tick source. It reports whether the game was running.
func (r *Runner) Pause() bool {
	if !r.state.Pause() {
		return false
	}
	r.stopTicks()
	r.logger.Debug("paused", "tick", r.state.Ticks)
	r.emit(r.state.Frame(snake.EventNone))
	return true
}

// Resume restarts the tick source unless the game is over. It reports
// whether the game was paused.
func (r *Runner) Resume() bool {
	if !r.state.Resume() {
		return false
	}
	r.logger.Debug("resumed", "tick", r.state.Ticks)
	r.emit(r.state.Frame(snake.EventNone))
	r.startTicks()
	return true
}

// Restart begins a new run after game over. It is ignored while a game is
// still in progress.
func (r *Runner) Restart() bool {
	if r.state.Status != snake.StatusOver {
		return false
	}
	r.Start()
	return true
}

// Shutdown stops the tick source for good, e.g. when the player quits.
func (r *Runner) Shutdown() {
	r.stopTicks()
}

// State returns a copy of the current game state.
func (r *Runner) State() snake.State {
	return r.state.Clone()
}

// Frame returns the last emitted frame.
func (r *Runner) Frame() snake.Frame {
	return r.frame
}

// Rules returns the rules of the game.
func (r *Runner) Rules() snake.Rules {
	return r.rules
}

// Ticking reports whether the tick source is active.
func (r *Runner) Ticking() bool {
	return r.active
}

func (r *Runner) emit(f snake.Frame) {
	r.frame = f
	r.renderer.Render(f)
}

func (r *Runner) startTicks() {
	if r.active {
		return
	}
	r.token = r.ticks.Start(r.period)
	r.active = true
}

func (r *Runner) stopTicks() {
	if !r.active {
		return
	}
	r.ticks.Stop(r.token)
	r.token = nil
	r.active = false
}

func (r *Runner) record() {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.RecordRun(r.state.Result()); err != nil {
		r.logger.Warn("could not record run", "error", err)
	}
}
