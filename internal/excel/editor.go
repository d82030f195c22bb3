package excel

import (
	"fmt"
	"strings"

	"rdprint/internal/logger"

	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// Excelize is a Host that applies layouts to workbook metadata in memory
// without printing or saving. Only the .xlsx family is readable.
type Excelize struct{}

func (Excelize) Launch() (Session, error) {
	return &editorSession{}, nil
}

type editorSession struct {
	open int
}

func (s *editorSession) Open(path string) (Workbook, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	s.open++
	editor.onClose = func() { s.open-- }
	return editor, nil
}

func (s *editorSession) Quit() error {
	if s.open > 0 {
		logger.Warn("Quitting dry-run session with open workbooks", "open", s.open)
	}
	return nil
}

// Editor is a workbook opened through excelize.
type Editor struct {
	file     *excelize.File
	filepath string
	sheet    string
	printed  int
	onClose  func()
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// SelectSheet makes the 1-based index the active sheet.
func (e *Editor) SelectSheet(index int) error {
	sheets := e.file.GetSheetList()
	if index < 1 || index > len(sheets) {
		return fmt.Errorf("%w: %d of %d", ErrSheetIndex, index, len(sheets))
	}
	e.file.SetActiveSheet(index - 1)
	e.sheet = sheets[index-1]
	return nil
}

// SetFont merges font into the existing style of every cell in cellRange.
func (e *Editor) SetFont(cellRange string, font Font) error {
	if err := e.requireSheet(); err != nil {
		return err
	}
	first, last, _ := strings.Cut(cellRange, ":")
	if last == "" {
		last = first
	}

	styleID, err := e.file.GetCellStyle(e.sheet, first)
	if err != nil {
		return fmt.Errorf("failed to read style of %s: %w", first, err)
	}
	style, err := e.file.GetStyle(styleID)
	if err != nil {
		return fmt.Errorf("failed to load style %d: %w", styleID, err)
	}
	if style.Font == nil {
		style.Font = &excelize.Font{}
	}
	style.Font.Bold = font.Bold
	style.Font.Size = font.Size

	newID, err := e.file.NewStyle(style)
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	return e.file.SetCellStyle(e.sheet, first, last, newID)
}

// ClearPrintArea removes the print area defined for the active sheet, if any.
func (e *Editor) ClearPrintArea() error {
	if err := e.requireSheet(); err != nil {
		return err
	}
	for _, name := range e.file.GetDefinedName() {
		if name.Name == printAreaName && name.Scope == e.sheet {
			return e.file.DeleteDefinedName(&excelize.DefinedName{Name: printAreaName, Scope: e.sheet})
		}
	}
	return nil
}

func (e *Editor) SetPageSetup(setup PageSetup) error {
	if err := e.requireSheet(); err != nil {
		return err
	}

	orientation := "portrait"
	if setup.Orientation == OrientationLandscape {
		orientation = "landscape"
	}
	if err := e.file.SetPageLayout(e.sheet, &excelize.PageLayoutOptions{
		Size:        &setup.PaperSize,
		Orientation: &orientation,
		FitToWidth:  &setup.FitWide,
		FitToHeight: &setup.FitTall,
	}); err != nil {
		return fmt.Errorf("failed to set page layout: %w", err)
	}

	if err := e.file.SetPageMargins(e.sheet, &excelize.PageLayoutMarginsOptions{
		Left:   &setup.Margins.Left,
		Right:  &setup.Margins.Right,
		Top:    &setup.Margins.Top,
		Bottom: &setup.Margins.Bottom,
	}); err != nil {
		return fmt.Errorf("failed to set page margins: %w", err)
	}

	// fitToPage takes precedence over any scale on the sheet.
	fitToPage := true
	if err := e.file.SetSheetProps(e.sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return fmt.Errorf("failed to enable fit to page: %w", err)
	}
	return nil
}

// PrintOut records the request; excelize has no print path.
func (e *Editor) PrintOut() error {
	if err := e.requireSheet(); err != nil {
		return err
	}
	e.printed++
	logger.Info("Dry run, print skipped", "file", e.filepath, "sheet", e.sheet)
	return nil
}

// Printed returns how many print requests the workbook has received.
func (e *Editor) Printed() int {
	return e.printed
}

// Close closes the file, saving it in place first when save is set.
func (e *Editor) Close(save bool) error {
	if save {
		if err := e.file.Save(); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}
	}
	if e.onClose != nil {
		e.onClose()
		e.onClose = nil
	}
	return e.file.Close()
}

func (e *Editor) requireSheet() error {
	if e.sheet == "" {
		return fmt.Errorf("%w: no sheet selected", ErrSheetIndex)
	}
	return nil
}
