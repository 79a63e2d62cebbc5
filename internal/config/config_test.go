package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := newWithPath(filepath.Join(t.TempDir(), "config.json"))

	if cfg.ShortcutMode() != CtrlShift {
		t.Errorf("ShortcutMode() = %q, want %q", cfg.ShortcutMode(), CtrlShift)
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false, want true")
	}
	if !cfg.HUDEnabled() {
		t.Error("HUDEnabled() = false, want true")
	}
	if cfg.UILanguage() != "ru" {
		t.Errorf("UILanguage() = %q, want \"ru\"", cfg.UILanguage())
	}
	if cfg.Extra().Enabled {
		t.Error("Extra().Enabled = true, want false")
	}
}

func TestParseShortcutMode(t *testing.T) {
	tests := []struct {
		in     string
		want   ShortcutMode
		wantOK bool
	}{
		{"ctrl_shift", CtrlShift, true},
		{"cmd_shift", CmdShift, true},
		{"both", Both, true},
		{"", CtrlShift, false},
		{"alt_shift", CtrlShift, false},
		{"CTRL_SHIFT", CtrlShift, false},
	}

	for _, tt := range tests {
		got, ok := ParseShortcutMode(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseShortcutMode(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestShortcutModeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	for _, mode := range []ShortcutMode{CtrlShift, CmdShift, Both} {
		cfg := newWithPath(path)
		cfg.SetShortcutMode(mode)

		reloaded := newWithPath(path)
		if reloaded.ShortcutMode() != mode {
			t.Errorf("after SetShortcutMode(%q): reloaded = %q", mode, reloaded.ShortcutMode())
		}
	}
}

func TestLoadInvalidShortcutMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"shortcut_mode": "super_shift", "notifications": true, "hud": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := newWithPath(path)
	if cfg.ShortcutMode() != CtrlShift {
		t.Errorf("ShortcutMode() = %q, want default %q", cfg.ShortcutMode(), CtrlShift)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := newWithPath(path)
	if cfg.ShortcutMode() != CtrlShift {
		t.Errorf("ShortcutMode() = %q, want default %q", cfg.ShortcutMode(), CtrlShift)
	}
}

func TestExtraHotkeyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := newWithPath(path)
	cfg.SetExtraHotkey(HotkeyConfig{
		Modifiers: []Modifier{ModCtrl, ModAlt},
		Key:       KeyL,
	})
	cfg.ToggleExtraEnabled()

	reloaded := newWithPath(path)
	extra := reloaded.Extra()
	if !extra.Enabled {
		t.Error("Extra().Enabled = false, want true")
	}
	if extra.Hotkey.Key != KeyL {
		t.Errorf("Extra().Hotkey.Key = %q, want %q", extra.Hotkey.Key, KeyL)
	}
	if len(extra.Hotkey.Modifiers) != 2 {
		t.Fatalf("Extra().Hotkey.Modifiers = %v, want 2 modifiers", extra.Hotkey.Modifiers)
	}
}

func TestOnExtraChange(t *testing.T) {
	cfg := newWithPath(filepath.Join(t.TempDir(), "config.json"))

	var got *ExtraHotkeyConfig
	cfg.OnExtraChange(func(e ExtraHotkeyConfig) {
		got = &e
	})

	cfg.ToggleExtraEnabled()
	if got == nil {
		t.Fatal("OnExtraChange callback not called")
	}
	if !got.Enabled {
		t.Error("callback got Enabled = false, want true")
	}
}

func TestHotkeyConfigString(t *testing.T) {
	tests := []struct {
		hk   HotkeyConfig
		want string
	}{
		{HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeySpace}, "ctrl+shift+space"},
		{HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: KeyL}, "alt+l"},
		{HotkeyConfig{Key: KeyF1}, "f1"},
	}

	for _, tt := range tests {
		if got := tt.hk.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestReloadAppliesExternalEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := newWithPath(path)
	cfg.SetShortcutMode(CtrlShift)

	called := 0
	cfg.OnReload(func() { called++ })

	// Правка извне
	data := `{"shortcut_mode": "cmd_shift", "ui_language": "en", "notifications": true, "hud": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg.reload()
	if cfg.ShortcutMode() != CmdShift {
		t.Errorf("after reload: ShortcutMode() = %q, want %q", cfg.ShortcutMode(), CmdShift)
	}
	if cfg.UILanguage() != "en" {
		t.Errorf("after reload: UILanguage() = %q, want \"en\"", cfg.UILanguage())
	}
	if called != 1 {
		t.Errorf("OnReload called %d times, want 1", called)
	}

	// Повторная перезагрузка без изменений не дёргает callback
	cfg.reload()
	if called != 1 {
		t.Errorf("OnReload called %d times after no-op reload, want 1", called)
	}
}
