//go:build windows

package excel

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"rdprint/internal/logger"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// System returns the Excel COM automation host.
func System() Host {
	return COM{}
}

// COM drives Excel.Application through OLE automation.
type COM struct{}

// Launch starts an invisible Excel instance. COM is initialised on the
// calling goroutine's OS thread, which stays locked until Quit.
func (COM) Launch() (Session, error) {
	runtime.LockOSThread()
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil && !isFalse(err) {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to initialise COM: %w", err)
	}

	s := &comSession{}
	if err := s.start(); err != nil {
		s.release()
		return nil, err
	}
	return s, nil
}

// isFalse reports S_FALSE, returned when COM is already initialised on the
// thread.
func isFalse(err error) bool {
	var oleErr *ole.OleError
	return errors.As(err, &oleErr) && oleErr.Code() == 1
}

type comSession struct {
	app       *ole.IDispatch
	workbooks *ole.IDispatch
}

func (s *comSession) start() error {
	unknown, err := oleutil.CreateObject("Excel.Application")
	if err != nil {
		return fmt.Errorf("failed to start Excel: %w", err)
	}
	defer unknown.Release()

	s.app, err = unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query Excel dispatch: %w", err)
	}
	if err := put(s.app, "Visible", false); err != nil {
		return err
	}
	if err := put(s.app, "DisplayAlerts", false); err != nil {
		return err
	}
	s.workbooks, err = getDispatch(s.app, "Workbooks")
	return err
}

func (s *comSession) Open(path string) (Workbook, error) {
	// Excel resolves relative names against its own current folder.
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	result, err := oleutil.CallMethod(s.workbooks, "Open", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &comWorkbook{session: s, wb: result.ToIDispatch()}, nil
}

func (s *comSession) Quit() error {
	var err error
	if s.app != nil {
		if _, callErr := oleutil.CallMethod(s.app, "Quit"); callErr != nil {
			err = fmt.Errorf("failed to quit Excel: %w", callErr)
		}
	}
	s.release()
	return err
}

func (s *comSession) release() {
	if s.workbooks != nil {
		s.workbooks.Release()
		s.workbooks = nil
	}
	if s.app != nil {
		s.app.Release()
		s.app = nil
	}
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

// points converts inches with the application's own conversion.
func (s *comSession) points(inches float64) (float64, error) {
	result, err := oleutil.CallMethod(s.app, "InchesToPoints", inches)
	if err != nil {
		return 0, fmt.Errorf("InchesToPoints: %w", err)
	}
	defer result.Clear()

	return toPoints(result.Value())
}

type comWorkbook struct {
	session *comSession
	wb      *ole.IDispatch
	sheet   *ole.IDispatch
}

func (w *comWorkbook) SelectSheet(index int) error {
	sheet, err := getDispatch(w.wb, "Sheets", index)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSheetIndex, err)
	}
	if w.sheet != nil {
		w.sheet.Release()
	}
	w.sheet = sheet

	if _, err := oleutil.CallMethod(w.sheet, "Activate"); err != nil {
		return fmt.Errorf("failed to activate sheet: %w", err)
	}
	return nil
}

func (w *comWorkbook) SetFont(cellRange string, font Font) error {
	if w.sheet == nil {
		return fmt.Errorf("%w: no sheet selected", ErrSheetIndex)
	}
	rng, err := getDispatch(w.sheet, "Range", cellRange)
	if err != nil {
		return err
	}
	defer rng.Release()

	fontDisp, err := getDispatch(rng, "Font")
	if err != nil {
		return err
	}
	defer fontDisp.Release()

	if err := put(fontDisp, "Bold", font.Bold); err != nil {
		return err
	}
	return put(fontDisp, "Size", font.Size)
}

func (w *comWorkbook) ClearPrintArea() error {
	pageSetup, err := w.pageSetup()
	if err != nil {
		return err
	}
	defer pageSetup.Release()

	return put(pageSetup, "PrintArea", "")
}

func (w *comWorkbook) SetPageSetup(setup PageSetup) error {
	pageSetup, err := w.pageSetup()
	if err != nil {
		return err
	}
	defer pageSetup.Release()

	if err := put(pageSetup, "PaperSize", setup.PaperSize); err != nil {
		return err
	}
	if err := put(pageSetup, "Orientation", setup.Orientation); err != nil {
		return err
	}

	margins := []struct {
		property string
		inches   float64
	}{
		{"LeftMargin", setup.Margins.Left},
		{"RightMargin", setup.Margins.Right},
		{"TopMargin", setup.Margins.Top},
		{"BottomMargin", setup.Margins.Bottom},
	}
	for _, m := range margins {
		points, err := w.session.points(m.inches)
		if err != nil {
			return err
		}
		if err := put(pageSetup, m.property, points); err != nil {
			return err
		}
	}

	// Zoom must be off or Excel ignores FitToPagesWide/Tall.
	if err := put(pageSetup, "Zoom", false); err != nil {
		return err
	}
	if err := put(pageSetup, "FitToPagesWide", setup.FitWide); err != nil {
		return err
	}
	return put(pageSetup, "FitToPagesTall", setup.FitTall)
}

func (w *comWorkbook) PrintOut() error {
	if w.sheet == nil {
		return fmt.Errorf("%w: no sheet selected", ErrSheetIndex)
	}
	if _, err := oleutil.CallMethod(w.sheet, "PrintOut"); err != nil {
		return fmt.Errorf("PrintOut: %w", err)
	}
	return nil
}

func (w *comWorkbook) Close(save bool) error {
	_, err := oleutil.CallMethod(w.wb, "Close", save)
	if w.sheet != nil {
		w.sheet.Release()
		w.sheet = nil
	}
	w.wb.Release()
	if err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	return nil
}

func (w *comWorkbook) pageSetup() (*ole.IDispatch, error) {
	if w.sheet == nil {
		return nil, fmt.Errorf("%w: no sheet selected", ErrSheetIndex)
	}
	return getDispatch(w.sheet, "PageSetup")
}

func getDispatch(disp *ole.IDispatch, name string, params ...interface{}) (*ole.IDispatch, error) {
	result, err := oleutil.GetProperty(disp, name, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return result.ToIDispatch(), nil
}

func put(disp *ole.IDispatch, name string, value interface{}) error {
	result, err := oleutil.PutProperty(disp, name, value)
	if err != nil {
		logger.Debug("COM property rejected", "property", name, "value", value, "error", err)
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	result.Clear()
	return nil
}
