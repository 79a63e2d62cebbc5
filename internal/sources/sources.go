// Package sources работает с источниками ввода операционной системы:
// перечисление, текущий источник, выбор следующего по кругу.
package sources

import (
	"sync"

	"github.com/go-errors/errors"
)

// ErrUnsupported возвращается на платформах без переключения источников.
var ErrUnsupported = errors.New("переключение источников ввода поддерживается только на macOS")

// Category разделяет клавиатурные источники и остальные (рукописный
// ввод, эмодзи и т.п.).
type Category int

const (
	CategoryOther Category = iota
	CategoryKeyboard
)

// Source описывает один источник ввода. Значения копируются из системы
// в момент запроса и между переключениями не кэшируются.
type Source struct {
	ID         string
	Name       string
	Category   Category
	Selectable bool
}

// Service даёт доступ к источникам ввода системы.
type Service interface {
	// List возвращает снимок всех источников ввода без фильтрации.
	List() ([]Source, error)
	// Current возвращает активный клавиатурный источник.
	Current() (Source, error)
	// Select делает источник с данным идентификатором активным.
	Select(id string) error
}

// New создаёт платформо-специфичный Service.
func New() Service {
	return newService()
}

// Toggler переключает раскладку на следующий переключаемый клавиатурный
// источник. Вызовы Toggle сериализованы мьютексом: переключать могут и
// перехватчик событий, и дополнительная горячая клавиша.
type Toggler struct {
	mu  sync.Mutex
	svc Service
}

// NewToggler создаёт Toggler поверх сервиса источников.
func NewToggler(svc Service) *Toggler {
	return &Toggler{svc: svc}
}

// Toggle выбирает следующий источник по кругу. Возвращает выбранный
// источник и признак произошедшего переключения: при менее чем двух
// переключаемых источниках ничего не происходит и это не ошибка.
func (t *Toggler) Toggle() (Source, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list, err := t.svc.List()
	if err != nil {
		return Source{}, false, errors.WrapPrefix(err, "список источников", 0)
	}

	selectable := filterSelectable(list)
	if len(selectable) < 2 {
		return Source{}, false, nil
	}

	current, err := t.svc.Current()
	if err != nil {
		return Source{}, false, errors.WrapPrefix(err, "текущий источник", 0)
	}

	// Активный источник может не попасть в отфильтрованный список,
	// тогда отсчитываем от начала.
	idx := 0
	for i, s := range selectable {
		if s.ID == current.ID {
			idx = i
			break
		}
	}

	next := selectable[(idx+1)%len(selectable)]
	if err := t.svc.Select(next.ID); err != nil {
		return Source{}, false, errors.WrapPrefix(err, "выбор источника", 0)
	}

	return next, true, nil
}

// filterSelectable оставляет только переключаемые клавиатурные источники,
// сохраняя порядок системы.
func filterSelectable(list []Source) []Source {
	out := make([]Source, 0, len(list))
	for _, s := range list {
		if s.Category == CategoryKeyboard && s.Selectable {
			out = append(out, s)
		}
	}
	return out
}
