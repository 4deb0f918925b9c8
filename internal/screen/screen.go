// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package screen

// Screen is one of the mutually exclusive dashboard views.
type Screen int

const (
	Main Screen = iota
	WeatherDetail
	Calendar
)

func (s Screen) String() string {
	switch s {
	case Main:
		return "main"
	case WeatherDetail:
		return "weather"
	case Calendar:
		return "calendar"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	return s >= Main && s <= Calendar
}

// Router tracks the active screen. The zero value shows Main.
type Router struct {
	current Screen
}

// Show makes s the active screen. Unknown screens fall back to Main.
func (r *Router) Show(s Screen) {
	if !s.Valid() {
		s = Main
	}
	r.current = s
}

// Current returns the active screen.
func (r *Router) Current() Screen {
	return r.current
}

// Is reports whether s is the active screen.
func (r *Router) Is(s Screen) bool {
	return r.current == s
}
