// Package chord распознаёт комбинацию «модификатор + левый Shift».
//
// Решение принимается в момент отпускания левого Shift: какой модификатор
// должен удерживаться, задаёт config.ShortcutMode. Отпускание Shift после
// обычного набора (Shift+буква без Ctrl/Cmd) комбинацией не считается.
package chord

import (
	"sync"

	"input-source-toggle/internal/config"
	"input-source-toggle/internal/monitor"
)

// Detector хранит состояние модификаторов между событиями и решает,
// когда сработала комбинация. Поля защищены мьютексом: события приходят
// с потока перехватчика, настройки меняются из меню.
type Detector struct {
	mu               sync.Mutex
	mode             config.ShortcutMode
	enabled          bool
	ctrlPressed      bool
	cmdPressed       bool
	leftShiftPressed bool
}

// New создаёт включённый Detector с заданным режимом.
func New(mode config.ShortcutMode) *Detector {
	return &Detector{mode: mode, enabled: true}
}

// Handle обрабатывает одно событие изменения модификаторов и сообщает,
// надо ли переключить раскладку. В выключенном состоянии учёт
// модификаторов продолжается, подавляется только срабатывание.
func (d *Detector) Handle(ev monitor.Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch ev.Keycode {
	case monitor.KeycodeLeftControl, monitor.KeycodeRightControl:
		d.ctrlPressed = ev.Ctrl
	case monitor.KeycodeLeftCommand, monitor.KeycodeRightCommand:
		d.cmdPressed = ev.Cmd
	}

	fire := false
	if ev.Keycode == monitor.KeycodeLeftShift {
		if ev.Shift {
			d.leftShiftPressed = true
		} else {
			if d.enabled && d.leftShiftPressed && d.chordHeld() {
				fire = true
			}
			d.leftShiftPressed = false
		}
	}

	// Модификатор мог быть отпущен без события по его собственному коду.
	if !ev.Ctrl {
		d.ctrlPressed = false
	}
	if !ev.Cmd {
		d.cmdPressed = false
	}

	return fire
}

// chordHeld проверяет режим против текущих модификаторов.
// Вызывается под мьютексом.
func (d *Detector) chordHeld() bool {
	switch d.mode {
	case config.CtrlShift:
		return d.ctrlPressed
	case config.CmdShift:
		return d.cmdPressed
	case config.Both:
		return d.ctrlPressed || d.cmdPressed
	default:
		return false
	}
}

// SetMode меняет комбинацию переключения.
func (d *Detector) SetMode(mode config.ShortcutMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

// Mode возвращает текущую комбинацию.
func (d *Detector) Mode() config.ShortcutMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetEnabled включает или выключает срабатывание.
func (d *Detector) SetEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = enabled
}

// Enabled возвращает true если срабатывание включено.
func (d *Detector) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}
