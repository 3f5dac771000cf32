// Package scheduler runs daily reminder jobs inside the process. Jobs
// live until Stop or process exit; there is no persistence.
package scheduler

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/teambition/rrule-go"
)

// Sender delivers reminder messages to a chat.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Job is one registered daily reminder.
type Job struct {
	Name    string
	ChatID  int64
	Hour    int
	Minute  int
	Message string

	rule *rrule.RRule
}

// NextRun returns the first occurrence strictly after now.
func (j *Job) NextRun(now time.Time) time.Time {
	return j.rule.After(now, false)
}

// Scheduler owns the reminder jobs and their timer goroutines.
type Scheduler struct {
	sender Sender
	loc    *time.Location

	mu   sync.Mutex
	jobs []*Job

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a scheduler that sends reminders through sender, with all
// clock times interpreted in loc.
func New(sender Sender, loc *time.Location) *Scheduler {
	return &Scheduler{
		sender: sender,
		loc:    loc,
		done:   make(chan struct{}),
	}
}

// RunDaily registers a reminder firing every day at hour:minute in the
// scheduler's timezone. Identical registrations are not deduplicated;
// each call schedules another job. The returned job carries the derived
// deterministic name.
func (s *Scheduler) RunDaily(chatID int64, hour, minute int, message string) (*Job, error) {
	now := time.Now().In(s.loc)
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, s.loc),
	})
	if err != nil {
		return nil, fmt.Errorf("build daily rule: %w", err)
	}

	job := &Job{
		Name:    JobName(chatID, hour, minute, message),
		ChatID:  chatID,
		Hour:    hour,
		Minute:  minute,
		Message: message,
		rule:    rule,
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(job)
	return job, nil
}

func (s *Scheduler) run(job *Job) {
	defer s.wg.Done()
	for {
		next := job.NextRun(time.Now().In(s.loc))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
			s.fire(job)
		}
	}
}

func (s *Scheduler) fire(job *Job) {
	if err := s.sender.SendMessage(job.ChatID, "⏰ Recordatorio: "+job.Message); err != nil {
		log.Printf("[scheduler] job %s send failed: %v", job.Name, err)
	}
}

// Jobs returns a snapshot of the registered jobs in registration order.
func (s *Scheduler) Jobs() []*Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Job(nil), s.jobs...)
}

// Stop cancels all job goroutines and waits for them. Call at most once.
func (s *Scheduler) Stop() {
	close(s.done)
	s.wg.Wait()
}

// JobName derives the deterministic identifier for a chat/time/message
// triple: reminder_<chat>_<HHMM>_<sha1(message) mod 10000>.
func JobName(chatID int64, hour, minute int, message string) string {
	sum := sha1.Sum([]byte(message))
	tag := binary.BigEndian.Uint64(sum[:8]) % 10000
	return fmt.Sprintf("reminder_%d_%02d%02d_%04d", chatID, hour, minute, tag)
}
