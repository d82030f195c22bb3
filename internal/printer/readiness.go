package printer

import (
	"errors"
	"fmt"

	"rdprint/internal/logger"
)

// ReadyAttributes is the only PRINTER_INFO_2 attribute mask accepted as
// ready. The comparison is exact: printers that are online but report any
// other combination of attribute bits count as not ready.
const ReadyAttributes uint32 = 0x00000A40

var ErrUnsupported = errors.New("print spooler is not available on this platform")

// Spooler is the part of the operating system print subsystem the tool uses.
type Spooler interface {
	DefaultPrinter() (string, error)
	Open(name string) (Device, error)
}

// Device is an open printer handle.
type Device interface {
	Attributes() (uint32, error)
	Close() error
}

// Check reports whether the named printer is ready. The device handle is
// released before Check returns. Query failures yield false together with the
// cause.
func Check(spooler Spooler, name string) (bool, error) {
	device, err := spooler.Open(name)
	if err != nil {
		return false, fmt.Errorf("failed to open printer %q: %w", name, err)
	}
	defer func() {
		if err := device.Close(); err != nil {
			logger.Warn("Failed to close printer handle", "printer", name, "error", err)
		}
	}()

	attributes, err := device.Attributes()
	if err != nil {
		return false, fmt.Errorf("failed to query printer %q: %w", name, err)
	}

	logger.Debug("Printer attributes", "printer", name, "attributes", fmt.Sprintf("0x%08X", attributes))
	return attributes == ReadyAttributes, nil
}

// Ready is a Spooler that reports every printer as ready. The dry-run
// command uses it so that no real device is consulted.
type Ready struct {
	Name string
}

func (r Ready) DefaultPrinter() (string, error) {
	if r.Name == "" {
		return "dry-run", nil
	}
	return r.Name, nil
}

func (r Ready) Open(string) (Device, error) {
	return readyDevice{}, nil
}

type readyDevice struct{}

func (readyDevice) Attributes() (uint32, error) { return ReadyAttributes, nil }
func (readyDevice) Close() error                { return nil }
