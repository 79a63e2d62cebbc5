//go:build darwin

package monitor

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <stdint.h>
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>

extern void goFlagsChanged(int64_t keyCode, uint64_t flags);

static CFMachPortRef g_flagsTap = NULL;

static CGEventRef flagsTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon) {
    if (type == kCGEventFlagsChanged) {
        int64_t keyCode = CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
        uint64_t flags = (uint64_t)CGEventGetFlags(event);
        goFlagsChanged(keyCode, flags);
    }
    // Событие всегда возвращается системе без изменений.
    return event;
}

static int createFlagsTap(void) {
    if (g_flagsTap != NULL) {
        return 0;
    }
    CGEventMask mask = CGEventMaskBit(kCGEventFlagsChanged);
    g_flagsTap = CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionDefault,
        mask,
        flagsTapCallback,
        NULL
    );
    return g_flagsTap != NULL ? 0 : -1;
}

static void runFlagsTap(void) {
    CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, g_flagsTap, 0);
    CFRunLoopAddSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
    CFRelease(source);
    CGEventTapEnable(g_flagsTap, true);
    CFRunLoopRun();
}

static void setFlagsTapEnabled(int enabled) {
    if (g_flagsTap != NULL) {
        CGEventTapEnable(g_flagsTap, enabled ? true : false);
    }
}
*/
import "C"

import (
	"sync"

	"github.com/go-errors/errors"
)

// Ссылка на обработчик для cgo-колбэка. Перехватчик один на процесс.
var (
	activeMu      sync.RWMutex
	activeHandler Handler
	loopOnce      sync.Once
)

type darwinMonitor struct {
	mu      sync.Mutex
	handler Handler
	running bool
}

func newMonitor(handler Handler) Monitor {
	return &darwinMonitor{handler: handler}
}

func (m *darwinMonitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	if C.createFlagsTap() != 0 {
		return errors.New("не удалось создать перехватчик: нет разрешения «Универсальный доступ»")
	}

	activeMu.Lock()
	activeHandler = m.handler
	activeMu.Unlock()

	m.running = true

	// Цикл перехватчика блокирует выделенный поток до конца процесса,
	// Stop лишь отключает перехватчик.
	loopOnce.Do(func() {
		go func() {
			C.runFlagsTap()
		}()
	})
	C.setFlagsTapEnabled(1)

	return nil
}

func (m *darwinMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	C.setFlagsTapEnabled(0)

	activeMu.Lock()
	activeHandler = nil
	activeMu.Unlock()

	m.running = false
}

//export goFlagsChanged
func goFlagsChanged(keyCode C.int64_t, flags C.uint64_t) {
	activeMu.RLock()
	handler := activeHandler
	activeMu.RUnlock()

	if handler != nil {
		handler(eventFromFlags(int64(keyCode), uint64(flags)))
	}
}
