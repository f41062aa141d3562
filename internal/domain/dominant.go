package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoDominantPollutant is returned when a ward reports no pollutants.
var NoDominantPollutant = DominantPollutant{Label: "N/A", Value: 0}

// displayLabels rewrites upper-cased pollutant codes into display form.
// PM10 is already correct after upper-casing and is listed so the table
// names every particulate code.
var displayLabels = map[string]string{
	"PM25": "PM2.5",
	"PM10": "PM10",
}

// SelectDominant returns the pollutant with the strictly greatest
// concentration. On ties the earliest entry in p wins.
func SelectDominant(p Pollutants) DominantPollutant {
	if len(p) == 0 {
		return NoDominantPollutant
	}

	best := p[0]
	for _, r := range p[1:] {
		if r.Value > best.Value {
			best = r
		}
	}
	return DominantPollutant{Label: PollutantLabel(best.Code), Value: best.Value}
}

// PollutantLabel upper-cases a pollutant code and applies the display rewrites.
func PollutantLabel(code string) string {
	label := cases.Upper(language.Und).String(code)
	if display, ok := displayLabels[label]; ok {
		return display
	}
	return label
}
