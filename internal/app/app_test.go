package app

import (
	"testing"

	"github.com/go-errors/errors"

	"input-source-toggle/internal/sources"
)

// recordingNotifier копит уведомления вместо отправки в систему.
type recordingNotifier struct {
	switched []string
	errs     []string
}

func (r *recordingNotifier) SetEnabled(bool) {}

func (r *recordingNotifier) Switched(name string) {
	r.switched = append(r.switched, name)
}

func (r *recordingNotifier) Error(msg string) {
	r.errs = append(r.errs, msg)
}

// failingService ломается на каждом обращении к системе.
type failingService struct{ err error }

func (s failingService) List() ([]sources.Source, error)  { return nil, s.err }
func (s failingService) Current() (sources.Source, error) { return sources.Source{}, s.err }
func (s failingService) Select(string) error              { return s.err }

// singleService отдаёт единственный переключаемый источник.
type singleService struct{}

func (singleService) List() ([]sources.Source, error) {
	return []sources.Source{
		{ID: "ru", Name: "Русская", Category: sources.CategoryKeyboard, Selectable: true},
	}, nil
}

func (singleService) Current() (sources.Source, error) {
	return sources.Source{ID: "ru"}, nil
}

func (singleService) Select(string) error { return nil }

func TestToggleFailureShowsNoNotification(t *testing.T) {
	rec := &recordingNotifier{}
	a := &App{
		toggler:  sources.NewToggler(failingService{err: errors.New("обрыв")}),
		notifier: rec,
	}

	a.toggle()

	if len(rec.errs) != 0 || len(rec.switched) != 0 {
		t.Errorf("сбой переключения показал уведомления: errors=%v, switched=%v", rec.errs, rec.switched)
	}
}

func TestToggleSingleSourceShowsNothing(t *testing.T) {
	rec := &recordingNotifier{}
	a := &App{
		toggler:  sources.NewToggler(singleService{}),
		notifier: rec,
	}

	a.toggle()

	if len(rec.switched) != 0 || len(rec.errs) != 0 {
		t.Errorf("переключение без альтернатив показало уведомления: switched=%v, errors=%v", rec.switched, rec.errs)
	}
}
