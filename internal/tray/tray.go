// Package tray предоставляет системный трей с меню.
package tray

import (
	"sync"
	"time"

	"github.com/getlantern/systray"

	"input-source-toggle/embedded"
	"input-source-toggle/internal/config"
	"input-source-toggle/internal/i18n"
)

const appName = "Input Source Toggle"

// flashDuration - на сколько подсвечивается иконка после переключения.
const flashDuration = 300 * time.Millisecond

// State представляет состояние переключателя для отображения в трее.
type State int

const (
	StateEnabled State = iota
	StateDisabled
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnEnabledToggle       func() bool
	OnShortcutModeSelect  func(config.ShortcutMode)
	OnExtraHotkeyClick    func()
	OnExtraEnabledToggle  func() bool
	OnHUDToggle           func() bool
	OnNotificationsToggle func() bool
	OnLanguageSelect      func(i18n.Language)
	OnAboutClick          func()
	OnQuit                func()
}

// langItem связывает пункт подменю с языком интерфейса.
type langItem struct {
	lang i18n.Language
	item *systray.MenuItem
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	cfg       *config.Config

	mu         sync.Mutex
	state      State
	flashTimer *time.Timer

	enabledItem  *systray.MenuItem
	descItem     *systray.MenuItem
	shortcutMenu *systray.MenuItem
	modeCtrl     *systray.MenuItem
	modeCmd      *systray.MenuItem
	modeBoth     *systray.MenuItem
	extraPick    *systray.MenuItem
	extraOn      *systray.MenuItem
	hudOn        *systray.MenuItem
	notifyOn     *systray.MenuItem
	langMenu     *systray.MenuItem
	langItems    []langItem
	langCh       chan i18n.Language
	aboutBtn     *systray.MenuItem
	quitBtn      *systray.MenuItem
}

// New создаёт новый Tray.
func New(cfg *config.Config, callbacks Callbacks) *Tray {
	return &Tray{
		callbacks: callbacks,
		cfg:       cfg,
		state:     StateEnabled,
		langCh:    make(chan i18n.Language),
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconEnabled)
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Включение/выключение переключателя
	t.enabledItem = systray.AddMenuItemCheckbox(i18n.T("tray_enabled"), i18n.T("tray_enabled_hint"), true)

	// Подсказка по текущему шорткату
	t.descItem = systray.AddMenuItem(shortcutDescription(t.cfg.ShortcutMode()), "")
	t.descItem.Disable()

	systray.AddSeparator()

	// Выбор шортката
	t.shortcutMenu = systray.AddMenuItem(i18n.T("tray_shortcut"), i18n.T("tray_shortcut_hint"))
	t.modeCtrl = t.shortcutMenu.AddSubMenuItemCheckbox(i18n.T("tray_ctrl_shift"), "", false)
	t.modeCmd = t.shortcutMenu.AddSubMenuItemCheckbox(i18n.T("tray_cmd_shift"), "", false)
	t.modeBoth = t.shortcutMenu.AddSubMenuItemCheckbox(i18n.T("tray_both"), "", false)

	// Дополнительная горячая клавиша
	t.extraPick = systray.AddMenuItem(extraHotkeyTitle(t.cfg), i18n.T("tray_extra_hotkey_hint"))
	t.extraOn = systray.AddMenuItemCheckbox(i18n.T("tray_extra_enabled"), i18n.T("tray_extra_enabled_hint"), t.cfg.Extra().Enabled)

	systray.AddSeparator()

	// HUD
	t.hudOn = systray.AddMenuItemCheckbox(i18n.T("tray_hud"), i18n.T("tray_hud_hint"), t.cfg.HUDEnabled())

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.cfg.NotificationsEnabled())

	// Язык интерфейса: по пункту на каждый поддерживаемый язык
	t.langMenu = systray.AddMenuItem(i18n.T("tray_ui_language"), i18n.T("tray_ui_language_hint"))
	for _, lang := range i18n.AvailableLanguages() {
		item := t.langMenu.AddSubMenuItemCheckbox(i18n.LanguageName(lang), "", false)
		t.langItems = append(t.langItems, langItem{lang: lang, item: item})
		go t.forwardLanguageClicks(lang, item)
	}

	systray.AddSeparator()

	// О программе
	t.aboutBtn = systray.AddMenuItem(i18n.T("tray_about"), i18n.T("tray_about_hint"))

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	t.syncChecks()

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Включение/выключение
		case <-t.enabledItem.ClickedCh:
			if t.callbacks.OnEnabledToggle != nil {
				if t.callbacks.OnEnabledToggle() {
					t.enabledItem.Check()
					t.SetState(StateEnabled)
				} else {
					t.enabledItem.Uncheck()
					t.SetState(StateDisabled)
				}
			}

		// Шорткат
		case <-t.modeCtrl.ClickedCh:
			t.selectMode(config.CtrlShift)
		case <-t.modeCmd.ClickedCh:
			t.selectMode(config.CmdShift)
		case <-t.modeBoth.ClickedCh:
			t.selectMode(config.Both)

		// Дополнительная клавиша
		case <-t.extraPick.ClickedCh:
			if t.callbacks.OnExtraHotkeyClick != nil {
				t.callbacks.OnExtraHotkeyClick()
			}
			t.syncChecks()

		case <-t.extraOn.ClickedCh:
			if t.callbacks.OnExtraEnabledToggle != nil {
				if t.callbacks.OnExtraEnabledToggle() {
					t.extraOn.Check()
				} else {
					t.extraOn.Uncheck()
				}
			}

		// HUD
		case <-t.hudOn.ClickedCh:
			if t.callbacks.OnHUDToggle != nil {
				if t.callbacks.OnHUDToggle() {
					t.hudOn.Check()
				} else {
					t.hudOn.Uncheck()
				}
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Язык
		case lang := <-t.langCh:
			t.selectLanguage(lang)

		// О программе
		case <-t.aboutBtn.ClickedCh:
			if t.callbacks.OnAboutClick != nil {
				t.callbacks.OnAboutClick()
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

func (t *Tray) selectMode(mode config.ShortcutMode) {
	if t.callbacks.OnShortcutModeSelect != nil {
		t.callbacks.OnShortcutModeSelect(mode)
	}
	t.syncChecks()
}

// forwardLanguageClicks сводит клики пунктов языка в общий канал
// цикла событий меню.
func (t *Tray) forwardLanguageClicks(lang i18n.Language, item *systray.MenuItem) {
	for range item.ClickedCh {
		t.langCh <- lang
	}
}

func (t *Tray) selectLanguage(lang i18n.Language) {
	if t.callbacks.OnLanguageSelect != nil {
		t.callbacks.OnLanguageSelect(lang)
	}
	t.RefreshUI()
}

// SetState устанавливает состояние переключателя и обновляет иконку.
func (t *Tray) SetState(state State) {
	t.mu.Lock()
	t.state = state
	if t.flashTimer != nil {
		t.flashTimer.Stop()
		t.flashTimer = nil
	}
	t.mu.Unlock()

	t.applyState(state)
}

// Flash кратко подсвечивает иконку после переключения раскладки.
func (t *Tray) Flash() {
	t.mu.Lock()
	defer t.mu.Unlock()

	systray.SetIcon(embedded.IconSwitched)
	if t.flashTimer != nil {
		t.flashTimer.Stop()
	}
	t.flashTimer = time.AfterFunc(flashDuration, t.restoreIcon)
}

func (t *Tray) restoreIcon() {
	t.mu.Lock()
	state := t.state
	t.flashTimer = nil
	t.mu.Unlock()

	t.applyState(state)
}

func (t *Tray) applyState(state State) {
	switch state {
	case StateEnabled:
		systray.SetIcon(embedded.IconEnabled)
		systray.SetTooltip(i18n.T("app_tooltip"))
	case StateDisabled:
		systray.SetIcon(embedded.IconDisabled)
		systray.SetTooltip(appName + " - " + i18n.T("tray_disabled"))
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.enabledItem != nil {
		t.enabledItem.SetTitle(i18n.T("tray_enabled"))
		t.enabledItem.SetTooltip(i18n.T("tray_enabled_hint"))
	}
	if t.shortcutMenu != nil {
		t.shortcutMenu.SetTitle(i18n.T("tray_shortcut"))
		t.shortcutMenu.SetTooltip(i18n.T("tray_shortcut_hint"))
	}
	if t.modeCtrl != nil {
		t.modeCtrl.SetTitle(i18n.T("tray_ctrl_shift"))
	}
	if t.modeCmd != nil {
		t.modeCmd.SetTitle(i18n.T("tray_cmd_shift"))
	}
	if t.modeBoth != nil {
		t.modeBoth.SetTitle(i18n.T("tray_both"))
	}
	if t.extraPick != nil {
		t.extraPick.SetTooltip(i18n.T("tray_extra_hotkey_hint"))
	}
	if t.extraOn != nil {
		t.extraOn.SetTitle(i18n.T("tray_extra_enabled"))
		t.extraOn.SetTooltip(i18n.T("tray_extra_enabled_hint"))
	}
	if t.hudOn != nil {
		t.hudOn.SetTitle(i18n.T("tray_hud"))
		t.hudOn.SetTooltip(i18n.T("tray_hud_hint"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	// Названия языков не переводятся: каждый подписан на своём языке
	if t.langMenu != nil {
		t.langMenu.SetTitle(i18n.T("tray_ui_language"))
		t.langMenu.SetTooltip(i18n.T("tray_ui_language_hint"))
	}
	if t.aboutBtn != nil {
		t.aboutBtn.SetTitle(i18n.T("tray_about"))
		t.aboutBtn.SetTooltip(i18n.T("tray_about_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}

	t.syncChecks()
}

// syncChecks приводит отметки меню в соответствие с конфигурацией.
func (t *Tray) syncChecks() {
	mode := t.cfg.ShortcutMode()
	setChecked(t.modeCtrl, mode == config.CtrlShift)
	setChecked(t.modeCmd, mode == config.CmdShift)
	setChecked(t.modeBoth, mode == config.Both)

	lang := i18n.GetLanguage()
	for _, li := range t.langItems {
		setChecked(li.item, li.lang == lang)
	}

	setChecked(t.extraOn, t.cfg.Extra().Enabled)
	setChecked(t.hudOn, t.cfg.HUDEnabled())
	setChecked(t.notifyOn, t.cfg.NotificationsEnabled())

	if t.descItem != nil {
		t.descItem.SetTitle(shortcutDescription(mode))
	}
	if t.extraPick != nil {
		t.extraPick.SetTitle(extraHotkeyTitle(t.cfg))
	}
}

func setChecked(item *systray.MenuItem, on bool) {
	if item == nil {
		return
	}
	if on {
		item.Check()
	} else {
		item.Uncheck()
	}
}

func shortcutDescription(mode config.ShortcutMode) string {
	switch mode {
	case config.CmdShift:
		return i18n.T("desc_cmd_shift")
	case config.Both:
		return i18n.T("desc_both")
	default:
		return i18n.T("desc_ctrl_shift")
	}
}

func extraHotkeyTitle(cfg *config.Config) string {
	return i18n.T("tray_extra_hotkey") + " (" + cfg.Extra().Hotkey.String() + ")"
}
