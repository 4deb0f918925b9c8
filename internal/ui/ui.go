// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package ui hosts the dashboard in an ebiten window.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/dashboard"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/screen"
)

const ticksPerSecond = 60

var keyActions = map[ebiten.Key]dashboard.Action{
	ebiten.KeyM:         dashboard.ActionToggleMatrix,
	ebiten.KeyW:         dashboard.ActionOpenWeather,
	ebiten.KeyC:         dashboard.ActionOpenCalendar,
	ebiten.KeyBackspace: dashboard.ActionShowMain,
	ebiten.KeyHome:      dashboard.ActionShowMain,
}

var calendarKeyActions = map[ebiten.Key]dashboard.Action{
	ebiten.KeyArrowLeft:  dashboard.ActionPrevMonth,
	ebiten.KeyArrowRight: dashboard.ActionNextMonth,
	ebiten.KeyT:          dashboard.ActionToday,
}

// Game implements ebiten.Game for the dashboard.
type Game struct {
	ctx    context.Context
	dash   *dashboard.Dashboard
	log    *logger.Logger
	width  int
	height int
	layer  *ebiten.Image
	touch  []ebiten.TouchID
}

// NewGame returns a Game that stops once ctx is done.
func NewGame(ctx context.Context, dash *dashboard.Dashboard, log *logger.Logger) *Game {
	return &Game{ctx: ctx, dash: dash, log: log}
}

// Run opens the window and blocks until it is closed, Escape is pressed or ctx is done.
func Run(ctx context.Context, conf *config.Config, dash *dashboard.Dashboard, log *logger.Logger) error {
	ebiten.SetWindowTitle(conf.Display.Title)
	ebiten.SetWindowSize(conf.Display.Width, conf.Display.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(!conf.Display.DisableFullscreen)
	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetRunnableOnUnfocused(true)

	log.Info("opening dashboard window", slog.String("title", conf.Display.Title),
		slog.Bool("fullscreen", !conf.Display.DisableFullscreen))
	err := ebiten.RunGame(NewGame(ctx, dash, log))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run dashboard window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("escape pressed, closing dashboard")
		return ebiten.Termination
	}

	g.ensureLayer()
	g.handleInput()
	g.dash.Step(time.Now())
	return nil
}

// ensureLayer keeps the matrix layer in sync with the window size. The layer is kept
// between frames so the rain leaves trails.
func (g *Game) ensureLayer() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.layer != nil && g.layer.Bounds().Dx() == g.width && g.layer.Bounds().Dy() == g.height {
		return
	}
	if g.layer != nil {
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(g.width, g.height)
	g.dash.Resize(g.width, g.height)
	g.dash.SetCanvas(&canvas{img: g.layer})
	g.log.Debug("window resized", slog.Int("width", g.width), slog.Int("height", g.height))
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	g.touch = inpututil.AppendJustPressedTouchIDs(g.touch[:0])
	for _, id := range g.touch {
		g.click(ebiten.TouchPosition(id))
	}

	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.dash.Do(action)
		}
	}
	if g.dash.Screen() != screen.Calendar {
		return
	}
	for key, action := range calendarKeyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.dash.Do(action)
		}
	}
}

func (g *Game) click(x, y int) {
	if action := g.dash.Click(x, y); action != dashboard.ActionNone {
		g.log.Debug("click handled", slog.Int("x", x), slog.Int("y", y),
			slog.String("action", action.String()))
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	switch g.dash.Screen() {
	case screen.WeatherDetail:
		g.drawWeather(dst)
	case screen.Calendar:
		g.drawCalendar(dst)
	default:
		g.drawMain(dst)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
