package track

import "time"

// Refresher periodically reports the elapsed time of a running timer to a
// display callback. It is cosmetic: recorded times never depend on it.
//
// Start and Stop must be called from the same goroutine. The callback runs on
// the refresher's own goroutine and must not block on the goroutine that
// calls Stop.
type Refresher struct {
	interval time.Duration
	fn       func(time.Duration)
	cancel   chan struct{}
	done     chan struct{}
}

func NewRefresher(interval time.Duration, fn func(time.Duration)) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{interval: interval, fn: fn}
}

// Start begins ticking for a run that started at start. It is a no-op if the
// refresher is already active.
func (r *Refresher) Start(start time.Time, now func() time.Time) {
	if r.cancel != nil || r.fn == nil {
		return
	}
	r.cancel = make(chan struct{})
	r.done = make(chan struct{})
	go r.loop(start, now, r.cancel, r.done)
}

// Stop cancels the ticking and waits for the loop to exit, so the callback
// never fires after Stop returns. Stopping an inactive refresher is a no-op.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	close(r.cancel)
	<-r.done
	r.cancel = nil
	r.done = nil
}

func (r *Refresher) Active() bool {
	return r.cancel != nil
}

func (r *Refresher) loop(start time.Time, now func() time.Time, cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			// a tick and a cancel can be ready together; cancel wins
			select {
			case <-cancel:
				return
			default:
			}
			r.fn(elapsedSince(start, now()))
		}
	}
}

func elapsedSince(start, now time.Time) time.Duration {
	d := now.Sub(start).Round(time.Millisecond)
	if d < 0 {
		return 0
	}
	return d
}
