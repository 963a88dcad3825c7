// Package session owns the periodic work a dashboard session runs: the
// insight refresh, the chart random walk, water reminders and the simulated
// heartbeat. Timers are named, and starting or stopping one twice is a no-op.
package session

import (
	"sync"
	"time"

	"github.com/mfeehan/vitals/internal/logger"
)

type task struct {
	interval time.Duration
	fn       func()
	stop     chan struct{}
	done     chan struct{}
}

type Controller struct {
	mu      sync.Mutex
	tasks   map[string]*task
	running map[string]bool
}

func NewController() *Controller {
	return &Controller{
		tasks:   map[string]*task{},
		running: map[string]bool{},
	}
}

// Register declares a named periodic task. Registering replaces any previous
// definition under the same name; a running instance keeps its old fn until
// stopped.
func (c *Controller) Register(name string, interval time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks[name] = &task{interval: interval, fn: fn}
}

// Start begins the named task's ticker loop. Starting an already running
// task is a no-op and reports false.
func (c *Controller) Start(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tasks[name]
	if !ok {
		logger.Warn("start of unknown timer ignored", "timer", name)
		return false
	}
	if c.running[name] {
		return false
	}

	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	c.running[name] = true
	logger.Debug("timer started", "timer", name, "interval", t.interval)

	go func(t *task) {
		defer close(t.done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.fn()
			case <-t.stop:
				return
			}
		}
	}(t)

	return true
}

// Stop halts the named task and waits for its loop to exit. Stopping a task
// that is not running is a no-op and reports false.
func (c *Controller) Stop(name string) bool {
	c.mu.Lock()
	t, ok := c.tasks[name]
	if !ok || !c.running[name] {
		c.mu.Unlock()
		return false
	}
	c.running[name] = false
	stop, done := t.stop, t.done
	c.mu.Unlock()

	close(stop)
	<-done
	logger.Debug("timer stopped", "timer", name)
	return true
}

func (c *Controller) IsRunning(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running[name]
}

// StopAll stops every running task, used at shutdown.
func (c *Controller) StopAll() {
	c.mu.Lock()
	names := make([]string, 0, len(c.tasks))
	for name := range c.tasks {
		names = append(names, name)
	}
	c.mu.Unlock()

	for _, name := range names {
		c.Stop(name)
	}
}
