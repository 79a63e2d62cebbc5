// Input Source Toggle - утилита в трее для переключения раскладки клавиатуры.
//
// Слушает модификаторы: отпускание левого Shift при зажатом Ctrl или Cmd
// переключает раскладку на следующую по кругу.
package main

import (
	"log"
	"os"

	"input-source-toggle/internal/app"
	"input-source-toggle/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "1.0"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Input Source Toggle %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New(Version)
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Ctrl/Cmd + левый Shift переключает раскладку.")
	application.Run()
}
