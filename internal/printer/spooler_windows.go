//go:build windows

package printer

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modwinspool = windows.NewLazySystemDLL("winspool.drv")

	procGetDefaultPrinterW = modwinspool.NewProc("GetDefaultPrinterW")
	procOpenPrinterW       = modwinspool.NewProc("OpenPrinterW")
	procGetPrinterW        = modwinspool.NewProc("GetPrinterW")
	procClosePrinter       = modwinspool.NewProc("ClosePrinter")
)

// printerInfo2 mirrors PRINTER_INFO_2.
type printerInfo2 struct {
	ServerName         *uint16
	PrinterName        *uint16
	ShareName          *uint16
	PortName           *uint16
	DriverName         *uint16
	Comment            *uint16
	Location           *uint16
	DevMode            uintptr
	SepFile            *uint16
	PrintProcessor     *uint16
	Datatype           *uint16
	Parameters         *uint16
	SecurityDescriptor uintptr
	Attributes         uint32
	Priority           uint32
	DefaultPriority    uint32
	StartTime          uint32
	UntilTime          uint32
	Status             uint32
	Jobs               uint32
	AveragePPM         uint32
}

// System returns the Windows print spooler.
func System() Spooler {
	return winSpooler{}
}

type winSpooler struct{}

func (winSpooler) DefaultPrinter() (string, error) {
	var size uint32
	procGetDefaultPrinterW.Call(0, uintptr(unsafe.Pointer(&size)))
	if size == 0 {
		return "", errors.New("no default printer is configured")
	}

	buf := make([]uint16, size)
	r, _, err := procGetDefaultPrinterW.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if r == 0 {
		return "", fmt.Errorf("GetDefaultPrinter: %w", err)
	}
	return windows.UTF16ToString(buf), nil
}

func (winSpooler) Open(name string) (Device, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}

	var handle windows.Handle
	r, _, err := procOpenPrinterW.Call(uintptr(unsafe.Pointer(namePtr)), uintptr(unsafe.Pointer(&handle)), 0)
	if r == 0 {
		return nil, fmt.Errorf("OpenPrinter: %w", err)
	}
	return &winDevice{handle: handle}, nil
}

type winDevice struct {
	handle windows.Handle
}

func (d *winDevice) Attributes() (uint32, error) {
	var needed uint32
	procGetPrinterW.Call(uintptr(d.handle), 2, 0, 0, uintptr(unsafe.Pointer(&needed)))
	if needed == 0 {
		return 0, errors.New("GetPrinter returned no data")
	}

	buf := make([]byte, needed)
	r, _, err := procGetPrinterW.Call(uintptr(d.handle), 2, uintptr(unsafe.Pointer(&buf[0])), uintptr(needed), uintptr(unsafe.Pointer(&needed)))
	if r == 0 {
		return 0, fmt.Errorf("GetPrinter: %w", err)
	}

	info := (*printerInfo2)(unsafe.Pointer(&buf[0]))
	return info.Attributes, nil
}

func (d *winDevice) Close() error {
	r, _, err := procClosePrinter.Call(uintptr(d.handle))
	if r == 0 {
		return fmt.Errorf("ClosePrinter: %w", err)
	}
	return nil
}
