//go:build darwin

package sources

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation

#include <Carbon/Carbon.h>
#include <stdio.h>
#include <stdlib.h>
#include <string.h>

// Снимок списка источников: по строке на источник, поля через табуляцию:
// id, локализованное имя, категория (K - клавиатурный, O - прочий),
// переключаемость (1|0). Буфер статический, вызовы сериализует Go-сторона.
static const char* listInputSources(void) {
    static char buffer[16384];
    buffer[0] = '\0';

    CFArrayRef sources = TISCreateInputSourceList(NULL, false);
    if (!sources) {
        return NULL;
    }

    size_t offset = 0;
    CFIndex count = CFArrayGetCount(sources);

    for (CFIndex i = 0; i < count; i++) {
        TISInputSourceRef source = (TISInputSourceRef)CFArrayGetValueAtIndex(sources, i);

        CFStringRef sourceID = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceID);
        CFStringRef name = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyLocalizedName);
        CFStringRef category = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceCategory);
        CFBooleanRef selectable = (CFBooleanRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceIsSelectCapable);

        if (!sourceID) {
            continue;
        }

        char idBuf[256] = "";
        char nameBuf[256] = "";
        CFStringGetCString(sourceID, idBuf, sizeof(idBuf), kCFStringEncodingUTF8);
        if (name) {
            CFStringGetCString(name, nameBuf, sizeof(nameBuf), kCFStringEncodingUTF8);
        }

        int isKeyboard = category && CFEqual(category, kTISCategoryKeyboardInputSource);
        int isSelectable = selectable && CFBooleanGetValue(selectable);

        int written = snprintf(buffer + offset, sizeof(buffer) - offset, "%s%s\t%s\t%c\t%c",
                               offset > 0 ? "\n" : "", idBuf, nameBuf,
                               isKeyboard ? 'K' : 'O', isSelectable ? '1' : '0');
        if (written < 0 || offset + written >= sizeof(buffer)) {
            break;
        }
        offset += written;
    }

    CFRelease(sources);
    return buffer;
}

// Активный клавиатурный источник: id и имя через табуляцию.
static const char* currentInputSource(void) {
    static char buffer[1024];

    TISInputSourceRef source = TISCopyCurrentKeyboardInputSource();
    if (!source) {
        return NULL;
    }

    CFStringRef sourceID = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceID);
    CFStringRef name = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyLocalizedName);

    char idBuf[256] = "";
    char nameBuf[256] = "";
    if (sourceID) {
        CFStringGetCString(sourceID, idBuf, sizeof(idBuf), kCFStringEncodingUTF8);
    }
    if (name) {
        CFStringGetCString(name, nameBuf, sizeof(nameBuf), kCFStringEncodingUTF8);
    }

    snprintf(buffer, sizeof(buffer), "%s\t%s", idBuf, nameBuf);

    CFRelease(source);
    return buffer;
}

// Выбор источника по идентификатору, 0 при успехе.
static int selectInputSourceByID(const char *targetID) {
    CFStringRef target = CFStringCreateWithCString(kCFAllocatorDefault, targetID, kCFStringEncodingUTF8);
    if (!target) {
        return -1;
    }

    CFArrayRef sources = TISCreateInputSourceList(NULL, false);
    if (!sources) {
        CFRelease(target);
        return -1;
    }

    int result = -1;
    CFIndex count = CFArrayGetCount(sources);

    for (CFIndex i = 0; i < count; i++) {
        TISInputSourceRef source = (TISInputSourceRef)CFArrayGetValueAtIndex(sources, i);
        CFStringRef sourceID = (CFStringRef)TISGetInputSourceProperty(source, kTISPropertyInputSourceID);

        if (sourceID && CFStringCompare(sourceID, target, 0) == kCFCompareEqualTo) {
            result = TISSelectInputSource(source) == noErr ? 0 : -1;
            break;
        }
    }

    CFRelease(sources);
    CFRelease(target);
    return result;
}
*/
import "C"

import (
	"strings"
	"unsafe"

	"github.com/go-errors/errors"
)

type tisService struct{}

func newService() Service {
	return tisService{}
}

func (tisService) List() ([]Source, error) {
	raw := C.listInputSources()
	if raw == nil {
		return nil, errors.New("не удалось получить список источников ввода")
	}

	var out []Source
	for _, line := range strings.Split(C.GoString(raw), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			continue
		}
		src := Source{
			ID:         fields[0],
			Name:       fields[1],
			Selectable: fields[3] == "1",
		}
		if fields[2] == "K" {
			src.Category = CategoryKeyboard
		}
		out = append(out, src)
	}
	return out, nil
}

func (tisService) Current() (Source, error) {
	raw := C.currentInputSource()
	if raw == nil {
		return Source{}, errors.New("не удалось получить активный источник ввода")
	}

	fields := strings.SplitN(C.GoString(raw), "\t", 2)
	if len(fields) != 2 || fields[0] == "" {
		return Source{}, errors.New("активный источник без идентификатора")
	}

	return Source{
		ID:         fields[0],
		Name:       fields[1],
		Category:   CategoryKeyboard,
		Selectable: true,
	}, nil
}

func (tisService) Select(id string) error {
	cid := C.CString(id)
	defer C.free(unsafe.Pointer(cid))

	if C.selectInputSourceByID(cid) != 0 {
		return errors.Errorf("не удалось выбрать источник %q", id)
	}
	return nil
}
