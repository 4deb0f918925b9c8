// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/wneessen/smart-dashboard/internal/config"
	"github.com/wneessen/smart-dashboard/internal/dashboard"
	"github.com/wneessen/smart-dashboard/internal/http"
	"github.com/wneessen/smart-dashboard/internal/logger"
	"github.com/wneessen/smart-dashboard/internal/presenter"
	"github.com/wneessen/smart-dashboard/internal/weather"
)

const weatherJobName = "weather_update_job"

// Window shows the dashboard and blocks until it is closed or ctx is done.
type Window func(ctx context.Context, dash *dashboard.Dashboard) error

type Service struct {
	config     *config.Config
	logger     *logger.Logger
	http       *http.Client
	scheduler  gocron.Scheduler
	dashboard  *dashboard.Dashboard
	weather    *weather.Client
	weatherJob gocron.Job

	// SignalSrc delivers the signals that trigger an immediate weather refresh
	SignalSrc signalSource
	// monitorSleep enables the D-Bus sleep/resume monitor
	monitorSleep bool
}

func New(conf *config.Config, log *logger.Logger) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	scheduler, err := gocron.NewScheduler(gocron.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	pres, err := presenter.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	service := &Service{
		config:       conf,
		logger:       log,
		http:         http.New(log),
		scheduler:    scheduler,
		SignalSrc:    stdLibSignalSource{},
		monitorSleep: true,
	}

	provider := service.selectWeatherProvider()
	service.weather = weather.NewClient(provider, conf.Weather.Timeout, log)
	service.dashboard = dashboard.New(conf, pres, log, time.Now(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	return service, nil
}

// Run starts the background jobs and shows the dashboard in window. It returns once the
// window is closed or ctx is cancelled. Windowing toolkits usually require it to be
// called from the main goroutine.
func (s *Service) Run(ctx context.Context, window Window) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	job, err := s.createScheduledJob(ctx, s.config.Intervals.WeatherUpdate, s.fetchWeather, weatherJobName)
	if err != nil {
		return err
	}
	s.weatherJob = job
	s.scheduler.Start()
	s.logger.Info("weather updates scheduled", slog.Bool("enabled", s.weather.Enabled()),
		slog.Duration("interval", s.config.Intervals.WeatherUpdate))

	if s.monitorSleep {
		go s.monitorSleepResume(ctx)
	}

	sigChan := make(chan os.Signal, 1)
	s.SignalSrc.Notify(sigChan, syscall.SIGUSR1)
	go func() {
		defer s.SignalSrc.Stop(sigChan)
		s.HandleSignals(ctx, sigChan)
	}()

	windowErr := window(ctx, s.dashboard)
	cancel()
	if err = s.scheduler.Shutdown(); err != nil {
		s.logger.Error("failed to shut down scheduler", logger.Err(err))
	}
	return windowErr
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) (gocron.Job, error) {
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return job, nil
}

// refreshNow runs the weather job out of schedule. It is a no-op before Run.
func (s *Service) refreshNow() {
	if s.weatherJob == nil {
		return
	}
	if err := s.weatherJob.RunNow(); err != nil {
		s.logger.Error("failed to trigger weather update", logger.Err(err))
	}
}
