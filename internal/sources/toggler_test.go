package sources

import (
	"testing"

	"github.com/go-errors/errors"
)

type fakeService struct {
	list     []Source
	current  Source
	listErr  error
	currErr  error
	selErr   error
	selected []string
}

func (f *fakeService) List() ([]Source, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeService) Current() (Source, error) {
	if f.currErr != nil {
		return Source{}, f.currErr
	}
	return f.current, nil
}

func (f *fakeService) Select(id string) error {
	f.selected = append(f.selected, id)
	return f.selErr
}

func kbd(id, name string) Source {
	return Source{ID: id, Name: name, Category: CategoryKeyboard, Selectable: true}
}

func TestToggleAdvances(t *testing.T) {
	svc := &fakeService{
		list: []Source{
			kbd("com.apple.keylayout.ABC", "ABC"),
			kbd("com.apple.keylayout.Russian", "Русская"),
			kbd("com.apple.keylayout.Hebrew", "Иврит"),
		},
		current: kbd("com.apple.keylayout.Russian", "Русская"),
	}

	next, switched, err := NewToggler(svc).Toggle()
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if !switched {
		t.Fatal("Toggle() switched = false, want true")
	}
	if next.ID != "com.apple.keylayout.Hebrew" {
		t.Errorf("next.ID = %q, want Hebrew", next.ID)
	}
	if next.Name != "Иврит" {
		t.Errorf("next.Name = %q, want %q", next.Name, "Иврит")
	}
	if len(svc.selected) != 1 || svc.selected[0] != "com.apple.keylayout.Hebrew" {
		t.Errorf("selected = %v, want exactly one select of Hebrew", svc.selected)
	}
}

func TestToggleWrapsAround(t *testing.T) {
	svc := &fakeService{
		list: []Source{
			kbd("a", "A"),
			kbd("b", "B"),
			kbd("c", "C"),
		},
		current: kbd("c", "C"),
	}

	next, switched, err := NewToggler(svc).Toggle()
	if err != nil || !switched {
		t.Fatalf("Toggle() = (%v, %v), want switch", switched, err)
	}
	if next.ID != "a" {
		t.Errorf("next.ID = %q, want wrap to %q", next.ID, "a")
	}
}

func TestToggleSingleSourceNoOp(t *testing.T) {
	svc := &fakeService{
		list:    []Source{kbd("a", "A")},
		current: kbd("a", "A"),
	}

	_, switched, err := NewToggler(svc).Toggle()
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if switched {
		t.Error("Toggle() switched = true, want no-op")
	}
	if len(svc.selected) != 0 {
		t.Errorf("selected = %v, want no Select calls", svc.selected)
	}
}

func TestToggleEmptyListNoOp(t *testing.T) {
	svc := &fakeService{}

	_, switched, err := NewToggler(svc).Toggle()
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if switched || len(svc.selected) != 0 {
		t.Errorf("Toggle() on empty list: switched = %v, selected = %v", switched, svc.selected)
	}
}

func TestToggleUnknownCurrentStartsFromHead(t *testing.T) {
	// Активный источник не из отфильтрованного списка: отсчёт идёт от
	// нулевого элемента, выбирается следующий за ним.
	svc := &fakeService{
		list: []Source{
			kbd("a", "A"),
			kbd("b", "B"),
			kbd("c", "C"),
		},
		current: Source{ID: "com.apple.PressAndHold", Name: "", Category: CategoryOther},
	}

	next, switched, err := NewToggler(svc).Toggle()
	if err != nil || !switched {
		t.Fatalf("Toggle() = (%v, %v), want switch", switched, err)
	}
	if next.ID != "b" {
		t.Errorf("next.ID = %q, want %q", next.ID, "b")
	}
}

func TestToggleFiltersNonKeyboardAndNonSelectable(t *testing.T) {
	svc := &fakeService{
		list: []Source{
			{ID: "palette", Name: "Эмодзи и символы", Category: CategoryOther, Selectable: true},
			kbd("a", "A"),
			{ID: "locked", Name: "Фиксированный", Category: CategoryKeyboard, Selectable: false},
			kbd("b", "B"),
		},
		current: kbd("a", "A"),
	}

	next, switched, err := NewToggler(svc).Toggle()
	if err != nil || !switched {
		t.Fatalf("Toggle() = (%v, %v), want switch", switched, err)
	}
	if next.ID != "b" {
		t.Errorf("next.ID = %q, want %q (мимо нефильтруемых)", next.ID, "b")
	}
}

func TestToggleOnlyOneSelectableNoOp(t *testing.T) {
	svc := &fakeService{
		list: []Source{
			kbd("a", "A"),
			{ID: "locked", Name: "Фиксированный", Category: CategoryKeyboard, Selectable: false},
			{ID: "palette", Name: "Эмодзи", Category: CategoryOther, Selectable: true},
		},
		current: kbd("a", "A"),
	}

	_, switched, err := NewToggler(svc).Toggle()
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if switched || len(svc.selected) != 0 {
		t.Errorf("Toggle(): switched = %v, selected = %v, want no-op", switched, svc.selected)
	}
}

func TestToggleListError(t *testing.T) {
	svc := &fakeService{listErr: errors.New("нет доступа")}

	_, switched, err := NewToggler(svc).Toggle()
	if err == nil {
		t.Fatal("Toggle() error = nil, want error")
	}
	if switched || len(svc.selected) != 0 {
		t.Errorf("Toggle() on List error: switched = %v, selected = %v", switched, svc.selected)
	}
}

func TestToggleCurrentError(t *testing.T) {
	svc := &fakeService{
		list:    []Source{kbd("a", "A"), kbd("b", "B")},
		currErr: errors.New("нет доступа"),
	}

	_, switched, err := NewToggler(svc).Toggle()
	if err == nil {
		t.Fatal("Toggle() error = nil, want error")
	}
	if switched || len(svc.selected) != 0 {
		t.Errorf("Toggle() on Current error: switched = %v, selected = %v", switched, svc.selected)
	}
}

func TestToggleSelectError(t *testing.T) {
	base := errors.New("занято")
	svc := &fakeService{
		list:    []Source{kbd("a", "A"), kbd("b", "B")},
		current: kbd("a", "A"),
		selErr:  base,
	}

	_, switched, err := NewToggler(svc).Toggle()
	if err == nil {
		t.Fatal("Toggle() error = nil, want error")
	}
	if !errors.Is(err, base) {
		t.Errorf("Toggle() error = %v, want wrapped %v", err, base)
	}
	if switched {
		t.Error("Toggle() switched = true on Select error")
	}
}

func TestToggleTwoSourcesAlternate(t *testing.T) {
	svc := &fakeService{
		list:    []Source{kbd("a", "A"), kbd("b", "B")},
		current: kbd("a", "A"),
	}
	toggler := NewToggler(svc)

	next, _, err := toggler.Toggle()
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != "b" {
		t.Fatalf("first Toggle() = %q, want b", next.ID)
	}

	// Система "переключилась": текущим стал b
	svc.current = kbd("b", "B")

	next, _, err = toggler.Toggle()
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != "a" {
		t.Errorf("second Toggle() = %q, want a", next.ID)
	}
}
