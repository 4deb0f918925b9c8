// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
)

// fetchWeather refreshes the weather snapshot and hands it to the dashboard. The
// snapshot is dropped if the dashboard is already gone.
func (s *Service) fetchWeather(ctx context.Context) {
	snap := s.weather.Refresh(ctx)
	if !s.dashboard.Publish(ctx, snap) {
		s.logger.Debug("dashboard closed, dropping weather snapshot", slog.String("state", snap.State().String()))
		return
	}
	s.logger.Debug("weather snapshot published", slog.String("state", snap.State().String()),
		slog.String("message", snap.Message()))
}
