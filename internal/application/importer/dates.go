package importer

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// TwoDigitYearPivot años hacia el futuro tolerados al interpretar años de 2 dígitos.
// Con pivot=20 en 2026: "85" -> 1985, "30" -> 2030, "50" -> 1950.
var TwoDigitYearPivot = 20

// excelMaxSerial corresponde a 9999-12-31 en el calendario de Excel.
const excelMaxSerial = 2958465

// Layouts con año de 4 dígitos; el formato brasileño (dd/mm/aaaa) tiene prioridad.
var fourDigitYearLayouts = []string{
	"02/01/2006", "2/1/2006", "02/01/2006 15:04:05", "02/01/2006 15:04",
	"02-01-2006", "02.01.2006",
	"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05", time.RFC3339,
	"2006/01/02",
	"20060102",
}

var twoDigitYearLayouts = []string{
	"02/01/06", "2/1/06", "02-01-06", "02.01.06",
}

// parseDate interpreta fechas de texto y, con excelSerial, seriales de Excel.
// Lo que no se reconoce queda nil.
func parseDate(raw string, now time.Time, excelSerial bool) *time.Time {
	if raw == "" {
		return nil
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err == nil && excelSerial && serial >= 1 && serial <= excelMaxSerial {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		return dateOnly(t)
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return dateOnly(t)
		}
	}

	limit := now.AddDate(TwoDigitYearPivot, 0, 0)
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if t.After(limit) {
				t = t.AddDate(-100, 0, 0)
			} else if t.Before(limit.AddDate(-100, 0, 0)) {
				t = t.AddDate(100, 0, 0)
			}
			return dateOnly(t)
		}
	}
	return nil
}

func dateOnly(t time.Time) *time.Time {
	y, m, d := t.Date()
	out := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &out
}
