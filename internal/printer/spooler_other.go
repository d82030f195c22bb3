//go:build !windows

package printer

// System returns the platform print spooler.
func System() Spooler {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) DefaultPrinter() (string, error) {
	return "", ErrUnsupported
}

func (unsupported) Open(string) (Device, error) {
	return nil, ErrUnsupported
}
