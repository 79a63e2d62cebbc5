// Package hud показывает плавающее окно с названием выбранной раскладки.
package hud

import (
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"input-source-toggle/internal/i18n"
)

const (
	windowTitle  = "Input Source Toggle"
	windowWidth  = 260
	windowHeight = 84

	showDuration = 1200 * time.Millisecond
	refreshRate  = 50 * time.Millisecond
)

var (
	colorBG   = color.NRGBA{R: 30, G: 30, B: 34, A: 245}
	colorText = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorDim  = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
)

// Window показывает название раскладки и закрывается сам спустя
// showDuration. Повторный Show продлевает показ и обновляет текст.
type Window struct {
	mu       sync.Mutex
	window   *app.Window
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	text     string
	deadline time.Time
}

// New создаёт окно.
func New() *Window {
	return &Window{}
}

// Show показывает окно с названием раскладки (не блокирует).
func (w *Window) Show(text string) {
	w.mu.Lock()
	w.text = text
	w.deadline = time.Now().Add(showDuration)

	if w.running {
		// Окно уже видно - обновляем текст и продлеваем показ
		if w.window != nil {
			w.window.Invalidate()
		}
		w.mu.Unlock()
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.runEventLoop()
}

// Hide закрывает окно немедленно.
func (w *Window) Hide() {
	w.hide(true)
}

// autoHide закрывает окно по истечении срока показа. Если параллельный
// Show успел продлить показ, окно остаётся на экране.
func (w *Window) autoHide() {
	w.hide(false)
}

func (w *Window) hide(force bool) {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	if !force && time.Now().Before(w.deadline) {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Ждём закрытия окна
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

func (w *Window) getText() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.text
}

func (w *Window) expired() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return time.Now().After(w.deadline)
}

func (w *Window) runEventLoop() {
	defer close(w.doneCh)

	// Локальная ссылка: после автозакрытия может стартовать новый Show
	// со своим окном, пока это ещё дорисовывает последний кадр.
	win := new(app.Window)
	win.Option(
		app.Title(windowTitle),
		app.Size(unit.Dp(windowWidth), unit.Dp(windowHeight)),
		app.Decorated(false), // Borderless
	)

	w.mu.Lock()
	w.window = win
	stopCh := w.stopCh
	w.mu.Unlock()

	var ops op.Ops

	// Позиционируем окно после появления
	go positionWindow(windowTitle, windowWidth, windowHeight)

	// Перерисовка и автозакрытие по истечении срока показа
	go func() {
		ticker := time.NewTicker(refreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-ticker.C:
				if w.expired() {
					go w.autoHide()
					continue
				}
				win.Invalidate()
			}
		}
	}()

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) draw(gtx layout.Context) layout.Dimensions {
	// Fill background
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	text := w.getText()

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			// Название раскладки
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorText
				lbl := material.Label(th, unit.Sp(20), text)
				lbl.Font.Weight = font.Medium
				lbl.Alignment = 1 // Center
				return lbl.Layout(gtx)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),

			// Подпись приложения
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				th := material.NewTheme()
				th.Palette.Fg = colorDim
				lbl := material.Label(th, unit.Sp(10), i18n.T("app_name"))
				lbl.Alignment = 1 // Center
				return lbl.Layout(gtx)
			}),
		)
	})
}
