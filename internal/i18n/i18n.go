// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Input Source Toggle",
		"app_tooltip": "Input Source Toggle - переключение раскладки",

		// Tray menu
		"tray_enabled":             "Включено",
		"tray_enabled_hint":        "Переключение раскладки по шорткату",
		"tray_disabled":            "Выключено",
		"tray_shortcut":            "Шорткат",
		"tray_shortcut_hint":       "Выбор комбинации клавиш",
		"tray_ctrl_shift":          "Ctrl + левый Shift",
		"tray_cmd_shift":           "Cmd + левый Shift",
		"tray_both":                "Оба варианта",
		"tray_extra_hotkey":        "Доп. клавиша...",
		"tray_extra_hotkey_hint":   "Отдельная горячая клавиша для переключения",
		"tray_extra_enabled":       "Доп. клавиша включена",
		"tray_extra_enabled_hint":  "Переключать и по дополнительной клавише",
		"tray_hud":                 "Окно на экране",
		"tray_hud_hint":            "Показывать название раскладки при переключении",
		"tray_notifications":       "Уведомления",
		"tray_notifications_hint":  "Показывать уведомления",
		"tray_ui_language":         "Язык интерфейса",
		"tray_ui_language_hint":    "Язык меню и уведомлений",
		"tray_about":               "О программе",
		"tray_about_hint":          "Версия и описание",
		"tray_quit":                "Выход",
		"tray_quit_hint":           "Закрыть приложение",

		// Shortcut descriptions (disabled info item)
		"desc_ctrl_shift": "⌃ Ctrl + левый Shift для переключения",
		"desc_cmd_shift":  "⌘ Cmd + левый Shift для переключения",
		"desc_both":       "⌃/⌘ + левый Shift для переключения",

		// Notifications
		"notify_switched": "Раскладка переключена",
		"notify_error":    "Ошибка",

		// Dialogs
		"about_text": "Версия %s\n\nБыстрое переключение раскладки клавиатуры\nпо сочетанию клавиш.",
		"perm_title": "Нужно разрешение «Универсальный доступ»",
		"perm_text":  "Выдайте разрешение в Системных настройках:\nКонфиденциальность и безопасность > Универсальный доступ,\nзатем перезапустите приложение.",

		// Hotkey picker
		"hotkey_mods_title":  "Доп. клавиша",
		"hotkey_mods_text":   "Выберите модификаторы",
		"hotkey_key_title":   "Доп. клавиша",
		"hotkey_key_text":    "Выберите клавишу",
		"hotkey_need_mod":    "Нужен хотя бы один модификатор",

		// Errors
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_monitor":         "Не удалось запустить мониторинг клавиатуры",
	},

	EN: {
		// App
		"app_name":    "Input Source Toggle",
		"app_tooltip": "Input Source Toggle - input source switcher",

		// Tray menu
		"tray_enabled":             "Enabled",
		"tray_enabled_hint":        "Toggle input sources with the shortcut",
		"tray_disabled":            "Disabled",
		"tray_shortcut":            "Shortcut",
		"tray_shortcut_hint":       "Choose the key combination",
		"tray_ctrl_shift":          "Ctrl + Left Shift",
		"tray_cmd_shift":           "Cmd + Left Shift",
		"tray_both":                "Both",
		"tray_extra_hotkey":        "Extra hotkey...",
		"tray_extra_hotkey_hint":   "Separate global hotkey for toggling",
		"tray_extra_enabled":       "Extra hotkey enabled",
		"tray_extra_enabled_hint":  "Also toggle with the extra hotkey",
		"tray_hud":                 "On-screen popup",
		"tray_hud_hint":            "Show the source name when switching",
		"tray_notifications":       "Notifications",
		"tray_notifications_hint":  "Show notifications",
		"tray_ui_language":         "Interface language",
		"tray_ui_language_hint":    "Menu and notification language",
		"tray_about":               "About",
		"tray_about_hint":          "Version and description",
		"tray_quit":                "Quit",
		"tray_quit_hint":           "Close application",

		// Shortcut descriptions (disabled info item)
		"desc_ctrl_shift": "⌃ Ctrl + Left Shift to toggle",
		"desc_cmd_shift":  "⌘ Cmd + Left Shift to toggle",
		"desc_both":       "⌃/⌘ + Left Shift to toggle",

		// Notifications
		"notify_switched": "Input source switched",
		"notify_error":    "Error",

		// Dialogs
		"about_text": "Version %s\n\nQuickly switch keyboard input sources\nusing a keyboard shortcut.",
		"perm_title": "Accessibility Permission Required",
		"perm_text":  "Please grant Accessibility permission in System Preferences >\nPrivacy & Security > Accessibility, then restart the app.",

		// Hotkey picker
		"hotkey_mods_title":  "Extra hotkey",
		"hotkey_mods_text":   "Select modifiers",
		"hotkey_key_title":   "Extra hotkey",
		"hotkey_key_text":    "Select a key",
		"hotkey_need_mod":    "At least one modifier is required",

		// Errors
		"error_hotkey_register": "Could not register hotkey",
		"error_monitor":         "Could not start keyboard monitoring",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
