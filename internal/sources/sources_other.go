//go:build !darwin

package sources

type stubService struct{}

func newService() Service {
	return stubService{}
}

func (stubService) List() ([]Source, error) {
	return nil, ErrUnsupported
}

func (stubService) Current() (Source, error) {
	return Source{}, ErrUnsupported
}

func (stubService) Select(string) error {
	return ErrUnsupported
}
