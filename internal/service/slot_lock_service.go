package service

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	lockCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// SlotLockService serializes scheduling requests per physician and per room
// so the conflict check and the registration are observed as one atomic unit.
//
// Lock Ordering (to prevent deadlocks): keys are always acquired in sorted
// order, so a request locking {physician, room} cannot deadlock against one
// locking {room, physician}.
type SlotLockService struct {
	log   *logrus.Logger
	locks sync.Map // map[string]*slotMutex

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// slotMutex tracks mutex usage for cleanup
type slotMutex struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSlotLockService creates a new SlotLockService.
// Starts background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown.
func NewSlotLockService(log *logrus.Logger) *SlotLockService {
	svc := &SlotLockService{
		log:      log,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop()

	return svc
}

// Lock acquires the mutexes for all given keys in sorted order and returns
// the release function. Release order is the reverse of acquisition.
func (s *SlotLockService) Lock(keys ...string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	held := make([]*slotMutex, 0, len(sorted))
	for _, key := range sorted {
		held = append(held, s.lockOne(key))
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].lastUsed.Store(time.Now().Unix())
			held[i].mu.Unlock()
		}
	}
}

// lockOne locks the mutex for one key, retrying if the cleanup loop removed
// the entry between the lookup and the lock.
func (s *SlotLockService) lockOne(key string) *slotMutex {
	for {
		value, _ := s.locks.LoadOrStore(key, &slotMutex{})
		m := value.(*slotMutex)
		m.mu.Lock()
		if current, ok := s.locks.Load(key); ok && current == value {
			m.lastUsed.Store(time.Now().Unix())
			return m
		}
		m.mu.Unlock()
	}
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SlotLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SlotLockService stopped")
	}
}

func (s *SlotLockService) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanupStale()
		}
	}
}

func (s *SlotLockService) cleanupStale() {
	cutoff := time.Now().Add(-lockStaleThreshold).Unix()
	removed := 0

	s.locks.Range(func(key, value interface{}) bool {
		m := value.(*slotMutex)
		if m.lastUsed.Load() >= cutoff {
			return true
		}
		if m.mu.TryLock() {
			s.locks.Delete(key)
			m.mu.Unlock()
			removed++
		}
		return true
	})

	if removed > 0 {
		s.log.Debugf("Cleaned up %d stale slot mutexes", removed)
	}
}
