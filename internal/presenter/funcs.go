// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"time"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"temp":        FormatTemperature,
		"timeFormat":  p.timeFormat,
		"natural":     p.naturalTime,
		"floatFormat": p.floatFormat,
		"lc":          strings.ToLower,
		"uc":          strings.ToUpper,
	}
}

// FormatTemperature formats a temperature with the shortest exact representation and at
// least one decimal, so 72.5 renders as "72.5" and 72 as "72.0".
func FormatTemperature(val float64) string {
	out := strconv.FormatFloat(val, 'f', -1, 64)
	if !strings.ContainsAny(out, ".NI") {
		out += ".0"
	}
	return out
}

func (p *Presenter) naturalTime(val time.Time) string {
	if val.IsZero() {
		return "never"
	}
	return p.humanizer.NaturalTime(val)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}
