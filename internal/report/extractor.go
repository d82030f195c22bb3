package report

import "regexp"

// FilePrefix is the literal token that must precede the report date.
const FilePrefix = "RDInstallmentReport"

var datePattern = regexp.MustCompile(FilePrefix + `(\d{2}-\d{2}-\d{4})`)

// ExtractDate returns the MM-DD-YYYY token that follows FilePrefix anywhere in
// name. The token is returned verbatim; it is never checked against a calendar.
func ExtractDate(name string) (string, bool) {
	match := datePattern.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}
	return match[1], true
}
