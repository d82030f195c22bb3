package excel

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupported = errors.New("spreadsheet automation is not available on this platform")
	ErrSheetIndex  = errors.New("sheet index out of range")
)

// Host starts spreadsheet automation sessions.
type Host interface {
	Launch() (Session, error)
}

// Session is one running instance of the spreadsheet application. It is
// owned by a single caller and is not safe for concurrent use.
type Session interface {
	Open(path string) (Workbook, error)
	Quit() error
}

// Workbook is an open file inside a Session. Sheet-level calls apply to the
// sheet chosen by SelectSheet.
type Workbook interface {
	SelectSheet(index int) error
	SetFont(cellRange string, font Font) error
	ClearPrintArea() error
	SetPageSetup(setup PageSetup) error
	PrintOut() error
	Close(save bool) error
}

type Font struct {
	Bold bool
	Size float64
}

// Paper sizes and orientations use the spreadsheet application's enumeration
// values.
const (
	PaperA4 = 9

	OrientationPortrait  = 1
	OrientationLandscape = 2
)

type Margins struct {
	Left, Right, Top, Bottom float64 // inches
}

// PageSetup describes the page layout of a sheet. A fit-to-page setup
// disables the zoom percentage.
type PageSetup struct {
	PaperSize   int
	Orientation int
	FitWide     int
	FitTall     int
	Margins     Margins
}

// Layout is the print formatting applied to each report before printing.
type Layout struct {
	SheetIndex int
	Range      string
	Font       Font
	Page       PageSetup
}

// ReportLayout is the fixed layout for installment reports.
var ReportLayout = Layout{
	SheetIndex: 1,
	Range:      "I6",
	Font:       Font{Bold: true, Size: 19},
	Page: PageSetup{
		PaperSize:   PaperA4,
		Orientation: OrientationPortrait,
		FitWide:     1,
		FitTall:     1,
		Margins:     Margins{Left: 0.5, Right: 0.5, Top: 0.5, Bottom: 0.5},
	},
}

// toPoints converts a value returned by the automation host into points.
func toPoints(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected point value of type %T", value)
	}
}

// ApplyLayout selects the layout's sheet and formats it for printing.
func ApplyLayout(wb Workbook, layout Layout) error {
	if err := wb.SelectSheet(layout.SheetIndex); err != nil {
		return fmt.Errorf("select sheet %d: %w", layout.SheetIndex, err)
	}
	if err := wb.SetFont(layout.Range, layout.Font); err != nil {
		return fmt.Errorf("format range %s: %w", layout.Range, err)
	}
	if err := wb.ClearPrintArea(); err != nil {
		return fmt.Errorf("clear print area: %w", err)
	}
	if err := wb.SetPageSetup(layout.Page); err != nil {
		return fmt.Errorf("page setup: %w", err)
	}
	return nil
}
