// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconEnabled - иконка в рабочем состоянии (серый глобус).
//
//go:embed icon_enabled.png
var IconEnabled []byte

// IconDisabled - иконка при выключенном переключении (перечёркнутый глобус).
//
//go:embed icon_disabled.png
var IconDisabled []byte

// IconSwitched - иконка сразу после переключения (зелёный глобус).
//
//go:embed icon_switched.png
var IconSwitched []byte
