package report

import (
	"path/filepath"
	"sort"
)

// ReportFile is a discovered report and the date taken from its name.
type ReportFile struct {
	Path string
	Date string
}

// Name returns the base name of the report file.
func (r ReportFile) Name() string {
	return filepath.Base(r.Path)
}

// BatchMap groups report files by date. Dates and the files under each date
// keep the order in which they were first seen.
type BatchMap struct {
	dates   []string
	batches map[string][]ReportFile
}

// Group builds a BatchMap from paths. Paths whose base name carries no report
// date are left out.
func Group(paths []string) *BatchMap {
	m := &BatchMap{batches: make(map[string][]ReportFile)}
	for _, path := range paths {
		date, ok := ExtractDate(filepath.Base(path))
		if !ok {
			continue
		}
		if _, seen := m.batches[date]; !seen {
			m.dates = append(m.dates, date)
		}
		m.batches[date] = append(m.batches[date], ReportFile{Path: path, Date: date})
	}
	return m
}

// Len returns the number of distinct dates.
func (m *BatchMap) Len() int {
	return len(m.dates)
}

// FileCount returns the number of grouped files across all dates.
func (m *BatchMap) FileCount() int {
	count := 0
	for _, files := range m.batches {
		count += len(files)
	}
	return count
}

// Dates returns the dates in discovery order.
func (m *BatchMap) Dates() []string {
	return append([]string(nil), m.dates...)
}

// SortedDates returns the dates ordered by year, month and day.
func (m *BatchMap) SortedDates() []string {
	dates := m.Dates()
	sort.SliceStable(dates, func(i, j int) bool {
		return sortKey(dates[i]) < sortKey(dates[j])
	})
	return dates
}

// Files returns the files grouped under date.
func (m *BatchMap) Files(date string) []ReportFile {
	return append([]ReportFile(nil), m.batches[date]...)
}

// Job flattens the selected dates into the ordered list of files to print.
// Dates are visited in the order given; unknown dates contribute nothing.
func (m *BatchMap) Job(selected []string) []ReportFile {
	var job []ReportFile
	for _, date := range selected {
		job = append(job, m.batches[date]...)
	}
	return job
}

// sortKey rearranges MM-DD-YYYY into YYYYMMDD.
func sortKey(date string) string {
	if len(date) != 10 {
		return date
	}
	return date[6:] + date[0:2] + date[3:5]
}
