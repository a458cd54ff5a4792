package workpool

import "sync"

type Job func() error

// RunPool executes jobs with at most maxWorkers concurrently. The returned
// slice is aligned with jobs: errs[i] is the error of jobs[i], or nil.
func RunPool(maxWorkers int, jobs []Job) []error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	errs := make([]error, len(jobs))
	if maxWorkers == 1 {
		for i, job := range jobs {
			errs[i] = job()
		}
		return errs
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)
	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j Job) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = j()
		}(i, job)
	}
	wg.Wait()
	return errs
}

// FirstError returns the first non-nil error in job order.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
