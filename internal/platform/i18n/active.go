package i18n

import (
	"sync"
	"sync/atomic"
)

// ActiveLocale is the process-wide locale selection. Reads are lock-free;
// writes are serialized so subscribers observe changes in order.
type ActiveLocale struct {
	current atomic.Value

	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]chan Locale
}

// NewActiveLocale creates a cell holding initial.
func NewActiveLocale(initial Locale) *ActiveLocale {
	active := &ActiveLocale{subscribers: map[uint64]chan Locale{}}
	active.current.Store(initial)
	return active
}

// Get returns the current locale.
func (a *ActiveLocale) Get() Locale {
	if a == nil {
		return Default()
	}
	locale, _ := a.current.Load().(Locale)
	return locale
}

// Set stores locale and notifies subscribers when the value changed.
func (a *ActiveLocale) Set(locale Locale) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Get() == locale {
		return
	}
	a.current.Store(locale)
	for _, ch := range a.subscribers {
		offerLatest(ch, locale)
	}
}

// Subscribe returns a channel that receives the current locale followed by
// every later change. Only the most recent undelivered value is kept. The
// returned func stops the subscription and closes the channel.
func (a *ActiveLocale) Subscribe() (<-chan Locale, func()) {
	ch := make(chan Locale, 1)
	if a == nil {
		close(ch)
		return ch, func() {}
	}

	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subscribers[id] = ch
	ch <- a.Get()
	a.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subscribers, id)
			close(ch)
			a.mu.Unlock()
		})
	}
	return ch, cancel
}

// offerLatest replaces any pending value in ch. The caller holds the write
// lock, so it is the only sender.
func offerLatest(ch chan Locale, locale Locale) {
	select {
	case ch <- locale:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- locale
}
