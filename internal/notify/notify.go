// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"

	"input-source-toggle/internal/i18n"
)

const appName = "Input Source Toggle"

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Switched показывает уведомление о переключении раскладки.
func (n *Notifier) Switched(sourceName string) {
	n.notify(i18n.T("notify_switched"), sourceName)
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	_ = beeep.Notify(appName+": "+title, message, "")
}
