//go:build !darwin

package monitor

type stubMonitor struct{}

func newMonitor(_ Handler) Monitor {
	return stubMonitor{}
}

func (stubMonitor) Start() error {
	return ErrUnsupported
}

func (stubMonitor) Stop() {}
