// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package dashboard

// Action is a user triggered state transition.
type Action int

const (
	ActionNone Action = iota
	ActionOpenWeather
	ActionOpenCalendar
	ActionShowMain
	ActionToggleMatrix
	ActionPrevMonth
	ActionNextMonth
	ActionSelectDay
	ActionToday
)

func (a Action) String() string {
	switch a {
	case ActionOpenWeather:
		return "open_weather"
	case ActionOpenCalendar:
		return "open_calendar"
	case ActionShowMain:
		return "show_main"
	case ActionToggleMatrix:
		return "toggle_matrix"
	case ActionPrevMonth:
		return "prev_month"
	case ActionNextMonth:
		return "next_month"
	case ActionSelectDay:
		return "select_day"
	case ActionToday:
		return "today"
	default:
		return "none"
	}
}
