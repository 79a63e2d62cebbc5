// Package monitor следит за глобальными событиями изменения модификаторов клавиатуры.
package monitor

import "github.com/go-errors/errors"

// Коды клавиш macOS, участвующие в комбинации.
const (
	KeycodeLeftShift    int64 = 56
	KeycodeLeftControl  int64 = 59
	KeycodeRightControl int64 = 62
	KeycodeLeftCommand  int64 = 55
	KeycodeRightCommand int64 = 54
)

// Битовые маски модификаторов в CGEventFlags.
const (
	maskShift   uint64 = 1 << 17
	maskControl uint64 = 1 << 18
	maskCommand uint64 = 1 << 20
)

// ErrUnsupported возвращается из Start на платформах без глобального
// мониторинга клавиатуры.
var ErrUnsupported = errors.New("мониторинг клавиатуры поддерживается только на macOS")

// Event описывает одно событие flagsChanged: код клавиши и состояние
// модификаторов на момент события.
type Event struct {
	Keycode int64
	Ctrl    bool
	Cmd     bool
	Shift   bool
}

// Handler получает каждое событие. Вызовы сериализованы циклом событий,
// обрабатывать нужно быстро и возвращать управление.
type Handler func(Event)

// Monitor доставляет события изменения модификаторов обработчику.
type Monitor interface {
	// Start создаёт перехватчик событий. Ошибка на macOS означает
	// отсутствие разрешения «Универсальный доступ».
	Start() error
	// Stop прекращает доставку событий. Повторный вызов безопасен.
	Stop()
}

// New создаёт платформо-специфичный Monitor.
func New(handler Handler) Monitor {
	return newMonitor(handler)
}

// eventFromFlags раскладывает пару (keycode, flags) в Event.
func eventFromFlags(keycode int64, flags uint64) Event {
	return Event{
		Keycode: keycode,
		Ctrl:    flags&maskControl != 0,
		Cmd:     flags&maskCommand != 0,
		Shift:   flags&maskShift != 0,
	}
}
