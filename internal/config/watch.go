package config

import (
	"path/filepath"
	"reflect"

	"github.com/fsnotify/fsnotify"
)

// OnReload устанавливает callback на перечитывание файла после
// внешнего изменения.
func (c *Config) OnReload(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReload = fn
}

// Watch следит за внешними правками файла конфигурации и перечитывает
// его на лету. Возвращает функцию остановки.
func (c *Config) Watch() (func(), error) {
	if c.configPath == "" {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Следим за директорией: редакторы сохраняют через rename.
	if err := watcher.Add(filepath.Dir(c.configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	stopCh := make(chan struct{})

	go func() {
		base := filepath.Base(c.configPath)
		for {
			select {
			case <-stopCh:
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					c.reload()
				}

			case <-watcher.Errors:
				// Продолжаем при ошибках
			}
		}
	}()

	return func() {
		close(stopCh)
		watcher.Close()
	}, nil
}

// reload перечитывает файл и дёргает callback, если значения изменились.
// Собственные сохранения проходят без срабатывания: значения совпадают.
func (c *Config) reload() {
	c.mu.Lock()
	before := c.snapshot()
	c.load()
	after := c.snapshot()
	callback := c.onReload
	c.mu.Unlock()

	if callback != nil && !reflect.DeepEqual(before, after) {
		callback()
	}
}
