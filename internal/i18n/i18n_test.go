package i18n

import "testing"

func TestTranslationsCoverBothLanguages(t *testing.T) {
	ru := translations[RU]
	en := translations[EN]

	for key := range ru {
		if _, ok := en[key]; !ok {
			t.Errorf("ключ %q есть в RU, но отсутствует в EN", key)
		}
	}
	for key := range en {
		if _, ok := ru[key]; !ok {
			t.Errorf("ключ %q есть в EN, но отсутствует в RU", key)
		}
	}
}

func TestTFallsBackToKey(t *testing.T) {
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("T(no_such_key) = %q, want сам ключ", got)
	}
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(RU)

	SetLanguage(EN)
	if GetLanguage() != EN {
		t.Fatalf("GetLanguage() = %q, want %q", GetLanguage(), EN)
	}
	if got := T("tray_enabled"); got != "Enabled" {
		t.Errorf("T(tray_enabled) = %q, want %q", got, "Enabled")
	}
}

func TestAvailableLanguagesHaveTranslations(t *testing.T) {
	langs := AvailableLanguages()
	if len(langs) < 2 {
		t.Fatalf("AvailableLanguages() = %v, ожидаются минимум ru и en", langs)
	}
	for _, lang := range langs {
		if _, ok := translations[lang]; !ok {
			t.Errorf("язык %q доступен, но переводов для него нет", lang)
		}
		if name := LanguageName(lang); name == "" || name == string(lang) {
			t.Errorf("LanguageName(%q) = %q, ожидается читаемое название", lang, name)
		}
	}
}

func TestLanguageName(t *testing.T) {
	cases := []struct {
		lang Language
		want string
	}{
		{RU, "Русский"},
		{EN, "English"},
		{Language("de"), "de"},
	}
	for _, c := range cases {
		if got := LanguageName(c.lang); got != c.want {
			t.Errorf("LanguageName(%q) = %q, want %q", c.lang, got, c.want)
		}
	}
}
