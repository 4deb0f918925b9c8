// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package job schedules periodic tasks that are driven by the caller's event loop
// instead of their own goroutines. All tasks run on the goroutine that calls Step.
package job

import (
	"time"
)

// Job represents a task that runs at a fixed interval.
type Job struct {
	name     string
	interval time.Duration
	task     func(time.Time)
	next     time.Time
}

// New creates a new Job with the given interval and task.
func New(name string, interval time.Duration, task func(time.Time)) *Job {
	return &Job{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Name returns the name of the job.
func (j *Job) Name() string {
	return j.name
}

// due runs the job if its deadline has passed. A job that has fallen behind by
// more than one interval runs once and skips the missed ticks.
func (j *Job) due(now time.Time) bool {
	if j.task == nil || j.interval <= 0 {
		return false
	}
	if !j.next.IsZero() && now.Before(j.next) {
		return false
	}

	j.task(now)
	if j.next.IsZero() || now.Sub(j.next) >= j.interval {
		j.next = now.Add(j.interval)
		return true
	}
	j.next = j.next.Add(j.interval)
	return true
}

// Scheduler holds a set of jobs and executes the due ones on each Step.
type Scheduler struct {
	jobs []*Job
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job with the scheduler. Every job runs on the first Step after it
// was added.
func (s *Scheduler) Add(j *Job) *Job {
	s.jobs = append(s.jobs, j)
	return j
}

// Every is a shorthand for Add(New(name, interval, task)).
func (s *Scheduler) Every(name string, interval time.Duration, task func(time.Time)) *Job {
	return s.Add(New(name, interval, task))
}

// Step runs all jobs whose deadline has passed, in the order they were added, and
// returns the number of jobs that ran.
func (s *Scheduler) Step(now time.Time) int {
	ran := 0
	for _, j := range s.jobs {
		if j.due(now) {
			ran++
		}
	}
	return ran
}
