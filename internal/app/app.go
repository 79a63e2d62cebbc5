// Package app содержит основную логику приложения.
package app

import (
	"log"

	"github.com/go-errors/errors"

	"input-source-toggle/internal/chord"
	"input-source-toggle/internal/config"
	"input-source-toggle/internal/dialog"
	"input-source-toggle/internal/hotkey"
	"input-source-toggle/internal/hud"
	"input-source-toggle/internal/i18n"
	"input-source-toggle/internal/monitor"
	"input-source-toggle/internal/notify"
	"input-source-toggle/internal/sources"
	"input-source-toggle/internal/tray"
)

// notifier отправляет пользователю системные уведомления.
type notifier interface {
	SetEnabled(enabled bool)
	Switched(sourceName string)
	Error(msg string)
}

// App представляет главное приложение.
type App struct {
	version   string
	config    *config.Config
	detector  *chord.Detector
	monitor   monitor.Monitor
	toggler   *sources.Toggler
	notifier  notifier
	tray      *tray.Tray
	hotkey    *hotkey.Handler
	hudWin    *hud.Window
	stopWatch func()
}

// New создаёт новое приложение.
func New(version string) (*App, error) {
	cfg := config.New()

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	notifier := notify.New(cfg.NotificationsEnabled())

	app := &App{
		version:  version,
		config:   cfg,
		notifier: notifier,
		toggler:  sources.NewToggler(sources.New()),
		hudWin:   hud.New(),
	}

	// Детектор отслеживает модификаторы и распознаёт шорткат
	app.detector = chord.New(cfg.ShortcutMode())
	app.monitor = monitor.New(app.onFlagsEvent)

	// Дополнительная горячая клавиша срабатывает по нажатию
	app.hotkey = hotkey.New(app.onHotkeyPress)

	// Создаём системный трей с обработчиками
	app.tray = tray.New(cfg, tray.Callbacks{
		OnEnabledToggle: func() bool {
			enabled := !app.detector.Enabled()
			app.detector.SetEnabled(enabled)
			log.Printf("Переключение по шорткату: %v", enabled)
			return enabled
		},
		OnShortcutModeSelect: func(mode config.ShortcutMode) {
			app.config.SetShortcutMode(mode)
			app.detector.SetMode(mode)
		},
		OnExtraHotkeyClick: func() {
			app.pickExtraHotkey()
		},
		OnExtraEnabledToggle: func() bool {
			return app.config.ToggleExtraEnabled()
		},
		OnHUDToggle: func() bool {
			return app.config.ToggleHUD()
		},
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnLanguageSelect: func(lang i18n.Language) {
			i18n.SetLanguage(lang)
			app.config.SetUILanguage(string(lang))
		},
		OnAboutClick: func() {
			go dialog.About(app.version)
		},
		OnQuit: func() {
			app.Close()
		},
	})

	// Перерегистрируем доп. клавишу при изменении настройки
	cfg.OnExtraChange(func(extra config.ExtraHotkeyConfig) {
		app.applyExtraHotkey(extra)
	})

	// Внешние правки файла конфигурации
	cfg.OnReload(app.onConfigReload)

	return app, nil
}

// Run запускает приложение.
func (a *App) Run() {
	a.tray.Run(func() {
		// Мониторинг модификаторов после инициализации трея
		if err := a.monitor.Start(); err != nil {
			log.Printf("Ошибка мониторинга клавиатуры: %v", err)
			if !errors.Is(err, monitor.ErrUnsupported) {
				// Скорее всего нет разрешения Accessibility
				a.notifier.Error(i18n.T("error_monitor"))
				go dialog.PermissionAlert()
			}
		}

		// Дополнительная горячая клавиша
		a.applyExtraHotkey(a.config.Extra())

		// Следим за внешними правками файла конфигурации
		stop, err := a.config.Watch()
		if err != nil {
			log.Printf("Ошибка наблюдения за конфигурацией: %v", err)
		} else {
			a.stopWatch = stop
		}
	})
}

// onFlagsEvent вызывается на каждое изменение модификаторов.
func (a *App) onFlagsEvent(ev monitor.Event) {
	if a.detector.Handle(ev) {
		a.toggle()
	}
}

func (a *App) onHotkeyPress() {
	// Доп. клавиша подчиняется общему выключателю
	if !a.detector.Enabled() {
		return
	}
	a.toggle()
}

// toggle переключает раскладку на следующую по кругу. Сбой OS-вызова
// только логируется, пользователя не беспокоим.
func (a *App) toggle() {
	src, switched, err := a.toggler.Toggle()
	if err != nil {
		log.Printf("Ошибка переключения раскладки: %v", err)
		return
	}
	if !switched {
		// Меньше двух раскладок - переключать нечего
		return
	}

	log.Printf("Переключено на: %s", src.Name)
	a.tray.Flash()
	a.notifier.Switched(src.Name)
	if a.config.HUDEnabled() {
		a.hudWin.Show(src.Name)
	}
}

func (a *App) pickExtraHotkey() {
	extra := a.config.Extra()
	hk, err := dialog.SelectHotkey(extra.Hotkey)
	if err != nil {
		// Пользователь отменил выбор
		return
	}
	a.config.SetExtraHotkey(hk)
}

func (a *App) applyExtraHotkey(extra config.ExtraHotkeyConfig) {
	if !extra.Enabled {
		a.hotkey.Unregister()
		return
	}

	if err := a.hotkey.Register(extra.Hotkey); err != nil {
		log.Printf("Ошибка регистрации горячей клавиши: %v", err)
		a.notifier.Error(i18n.T("error_hotkey_register"))
	}
}

func (a *App) onConfigReload() {
	log.Printf("Конфигурация перечитана")

	a.detector.SetMode(a.config.ShortcutMode())
	a.notifier.SetEnabled(a.config.NotificationsEnabled())

	if lang := a.config.UILanguage(); lang != "" {
		i18n.SetLanguage(i18n.Language(lang))
	}

	a.applyExtraHotkey(a.config.Extra())
	a.tray.RefreshUI()
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	if a.hotkey != nil {
		a.hotkey.Unregister()
	}

	if a.monitor != nil {
		a.monitor.Stop()
	}

	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}

	if a.hudWin != nil {
		a.hudWin.Hide()
	}
}
