package excel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWorkbook struct {
	calls   []string
	failOn  string
	font    Font
	setup   PageSetup
	cellRef string
}

func (w *recordingWorkbook) record(call string) error {
	w.calls = append(w.calls, call)
	if call == w.failOn {
		return errors.New(call + " failed")
	}
	return nil
}

func (w *recordingWorkbook) SelectSheet(index int) error {
	return w.record("select")
}

func (w *recordingWorkbook) SetFont(cellRange string, font Font) error {
	w.cellRef = cellRange
	w.font = font
	return w.record("font")
}

func (w *recordingWorkbook) ClearPrintArea() error {
	return w.record("clear")
}

func (w *recordingWorkbook) SetPageSetup(setup PageSetup) error {
	w.setup = setup
	return w.record("page")
}

func (w *recordingWorkbook) PrintOut() error {
	return w.record("print")
}

func (w *recordingWorkbook) Close(save bool) error {
	return w.record("close")
}

func TestApplyLayoutOrder(t *testing.T) {
	wb := &recordingWorkbook{}

	require.NoError(t, ApplyLayout(wb, ReportLayout))
	assert.Equal(t, []string{"select", "font", "clear", "page"}, wb.calls)
	assert.Equal(t, "I6", wb.cellRef)
	assert.Equal(t, Font{Bold: true, Size: 19}, wb.font)
	assert.Equal(t, PageSetup{
		PaperSize:   PaperA4,
		Orientation: OrientationPortrait,
		FitWide:     1,
		FitTall:     1,
		Margins:     Margins{Left: 0.5, Right: 0.5, Top: 0.5, Bottom: 0.5},
	}, wb.setup)
}

func TestApplyLayoutStopsAtFirstFailure(t *testing.T) {
	wb := &recordingWorkbook{failOn: "font"}

	err := ApplyLayout(wb, ReportLayout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format range I6")
	assert.Equal(t, []string{"select", "font"}, wb.calls)
}

func TestToPoints(t *testing.T) {
	points, err := toPoints(36.0)
	require.NoError(t, err)
	assert.Equal(t, 36.0, points)

	points, err = toPoints(float32(36))
	require.NoError(t, err)
	assert.Equal(t, 36.0, points)

	_, err = toPoints(nil)
	assert.Error(t, err)
	_, err = toPoints("36")
	assert.Error(t, err)
}
