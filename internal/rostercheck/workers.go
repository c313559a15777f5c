package rostercheck

import (
	"context"
	"sync"
	"sync/atomic"
)

// fanOut runs fn for every email on config.Workers goroutines and counts
// how many calls reported success.
func fanOut(ctx context.Context, config *Config, emails []string, fn func(context.Context, string) bool) (int, int) {
	var (
		successful int64
		failed     int64
	)

	emailChan := make(chan string, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for email := range emailChan {
				if ctx.Err() != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}
				if fn(ctx, email) {
					atomic.AddInt64(&successful, 1)
				} else {
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(emailChan)
		for _, email := range emails {
			select {
			case <-ctx.Done():
				return
			case emailChan <- email:
			}
		}
	}()

	wg.Wait()
	return int(atomic.LoadInt64(&successful)), int(atomic.LoadInt64(&failed))
}
