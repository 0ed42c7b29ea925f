package store

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/safehavenapp/safehaven/internal/report"
)

// ReportsKey is the key-value store key holding the serialized report
// log. The value is a JSON array of report records, rewritten on every
// change and read back verbatim at session start.
const ReportsKey = "safehaven-reports"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SaveReports persists the full report sequence under ReportsKey.
func (s *Store) SaveReports(reports []report.Report) error {
	if reports == nil {
		reports = []report.Report{}
	}
	data, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return s.Set(ReportsKey, string(data))
}

// LoadReports reads back the persisted report sequence. A missing key
// yields an empty log, not an error.
func (s *Store) LoadReports() ([]report.Report, error) {
	value, err := s.Get(ReportsKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var reports []report.Report
	if err := json.UnmarshalFromString(value, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
