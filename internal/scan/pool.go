package scan

import (
	"context"
	"sync"
	"time"

	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

// job carries a URL together with its position in the input so results can
// be reassembled in input order.
type job struct {
	index int
	url   string
}

// ScanAll scans every URL with a pool of workers and returns the results in
// input order. Scans are independent: a failed URL fills its own slot and
// never affects the others. Detection is pure and fetches share no state, so
// the concurrency is safe by construction.
func (s *Scanner) ScanAll(ctx context.Context, urls []string) models.BatchReport {
	workers := s.Config.Scan.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(urls) && len(urls) > 0 {
		workers = len(urls)
	}

	var rateLimiter *time.Ticker
	if s.Config.Scan.RateLimit > 0 {
		rateLimiter = time.NewTicker(s.Config.Scan.RateLimit)
		defer rateLimiter.Stop()
	}

	jobs := make(chan job, len(urls))
	results := make([]models.ScanResult, len(urls))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if rateLimiter != nil {
					<-rateLimiter.C
				}
				results[j.index] = s.Scan(ctx, j.url)
			}
		}()
	}

	for i, url := range urls {
		jobs <- job{index: i, url: url}
	}
	close(jobs)
	wg.Wait()

	report := models.BatchReport{
		Results:      results,
		TotalScanned: len(results),
	}
	for _, r := range results {
		if r.AuthResult != nil && r.AuthResult.Found {
			report.SitesWithAuth++
		}
	}
	return report
}
