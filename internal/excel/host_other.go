//go:build !windows

package excel

// System returns the platform spreadsheet host. Only Windows has one; use
// Excelize for dry runs elsewhere.
func System() Host {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) Launch() (Session, error) {
	return nil, ErrUnsupported
}
