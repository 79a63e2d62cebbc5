// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// ShortcutMode задаёт, какой модификатор должен удерживаться при
// отпускании левого Shift.
type ShortcutMode string

const (
	CtrlShift ShortcutMode = "ctrl_shift"
	CmdShift  ShortcutMode = "cmd_shift"
	Both      ShortcutMode = "both"
)

// ParseShortcutMode проверяет строку из файла или меню.
func ParseShortcutMode(s string) (ShortcutMode, bool) {
	switch ShortcutMode(s) {
	case CtrlShift, CmdShift, Both:
		return ShortcutMode(s), true
	}
	return CtrlShift, false
}

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig хранит настройки горячей клавиши.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	result := ""
	for _, m := range h.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(h.Key)
	return result
}

// ExtraHotkeyConfig хранит настройки дополнительной клавиши переключения.
type ExtraHotkeyConfig struct {
	Enabled bool         `json:"enabled"`
	Hotkey  HotkeyConfig `json:"hotkey"`
}

// configData структура для сериализации.
type configData struct {
	ShortcutMode  ShortcutMode      `json:"shortcut_mode"`
	UILanguage    string            `json:"ui_language,omitempty"`
	Notifications bool              `json:"notifications"`
	HUD           bool              `json:"hud"`
	Extra         ExtraHotkeyConfig `json:"extra_hotkey"`
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	shortcutMode  ShortcutMode
	uiLanguage    string
	notifications bool
	hud           bool
	extra         ExtraHotkeyConfig
	configPath    string
	onExtraChange func(ExtraHotkeyConfig)
	onReload      func()
}

// New создаёт конфигурацию, загружая из файла рядом с бинарником
// или с настройками по умолчанию.
func New() *Config {
	return newWithPath(defaultPath())
}

func newWithPath(path string) *Config {
	c := &Config{
		shortcutMode:  CtrlShift,
		uiLanguage:    "ru", // По умолчанию русский интерфейс
		notifications: true,
		hud:           true,
		extra: ExtraHotkeyConfig{
			Enabled: false,
			Hotkey: HotkeyConfig{
				Modifiers: []Modifier{ModCtrl, ModAlt},
				Key:       KeySpace,
			},
		},
		configPath: path,
	}

	c.load()

	return c
}

// defaultPath возвращает путь к config.json рядом с бинарником.
func defaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	// Резолвим симлинки
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(execPath), "config.json")
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return // Файл не существует, используем defaults
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	if mode, ok := ParseShortcutMode(string(cfg.ShortcutMode)); ok {
		c.shortcutMode = mode
	}
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = cfg.Notifications
	c.hud = cfg.HUD
	c.extra.Enabled = cfg.Extra.Enabled
	if cfg.Extra.Hotkey.Key != "" {
		c.extra.Hotkey = cfg.Extra.Hotkey
	}
}

// snapshot собирает сериализуемое состояние. Вызывается под мьютексом.
func (c *Config) snapshot() configData {
	return configData{
		ShortcutMode:  c.shortcutMode,
		UILanguage:    c.uiLanguage,
		Notifications: c.notifications,
		HUD:           c.hud,
		Extra:         c.extra,
	}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	data, err := json.MarshalIndent(c.snapshot(), "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

// ShortcutMode возвращает текущую комбинацию переключения.
func (c *Config) ShortcutMode() ShortcutMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shortcutMode
}

// SetShortcutMode устанавливает комбинацию переключения.
func (c *Config) SetShortcutMode(mode ShortcutMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shortcutMode = mode
	c.save()
}

// SetNotifications включает/выключает уведомления.
func (c *Config) SetNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = enabled
	c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// ToggleHUD переключает показ окна с названием раскладки.
func (c *Config) ToggleHUD() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hud = !c.hud
	c.save()
	return c.hud
}

// HUDEnabled возвращает true если окно с названием раскладки включено.
func (c *Config) HUDEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hud
}

// Extra возвращает настройки дополнительной клавиши.
func (c *Config) Extra() ExtraHotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.extra
}

// SetExtraHotkey устанавливает дополнительную клавишу.
func (c *Config) SetExtraHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	c.extra.Hotkey = hk
	callback := c.onExtraChange
	extra := c.extra
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(extra)
	}
}

// ToggleExtraEnabled переключает дополнительную клавишу.
func (c *Config) ToggleExtraEnabled() bool {
	c.mu.Lock()
	c.extra.Enabled = !c.extra.Enabled
	callback := c.onExtraChange
	extra := c.extra
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(extra)
	}
	return extra.Enabled
}

// OnExtraChange устанавливает callback для изменения дополнительной клавиши.
func (c *Config) OnExtraChange(fn func(ExtraHotkeyConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExtraChange = fn
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
