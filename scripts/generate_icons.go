//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name   string
		color  color.RGBA
		strike bool
	}{
		{"icon_enabled.png", color.RGBA{128, 128, 128, 255}, false}, // Серый
		{"icon_disabled.png", color.RGBA{80, 80, 80, 255}, true},    // Тёмно-серый, перечёркнут
		{"icon_switched.png", color.RGBA{80, 200, 120, 255}, false}, // Зелёный
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color, icon.strike); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

func generateIcon(path string, c color.RGBA, strike bool) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Рисуем глобус: кольцо, экватор и меридиан
	centerX, centerY := size/2, size/2
	outer := 22.0
	inner := 17.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			d2 := dx*dx + dy*dy
			if d2 <= outer*outer && d2 >= inner*inner {
				img.Set(x, y, c)
			}
		}
	}

	// Экватор
	for y := centerY - 2; y <= centerY+2; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy <= outer*outer {
				img.Set(x, y, c)
			}
		}
	}

	// Меридиан
	for x := centerX - 2; x <= centerX+2; x++ {
		for y := 0; y < size; y++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy <= outer*outer {
				img.Set(x, y, c)
			}
		}
	}

	// Диагональная черта для выключенного состояния
	if strike {
		for i := 8; i < size-8; i++ {
			for w := -2; w <= 2; w++ {
				x := i + w
				y := i
				if x >= 0 && x < size {
					img.Set(x, y, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
