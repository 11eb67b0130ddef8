package util

import "go.uber.org/zap"

// Progress counts finished jobs and logs how far along they are.
type Progress struct {
	errs chan error
	done chan struct{}
}

func NewProgress(total int) Progress {
	p := Progress{make(chan error), make(chan struct{})}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			if err == nil {
				completed += 1
			} else {
				errorCount += 1
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Log.Info("progress",
				zap.Int("complete", completed), zap.Int("total", total),
				zap.Float64("percent", ratio), zap.Int("errors", errorCount))
		}
		p.done <- struct{}{}
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

func (p Progress) Close() {
	close(p.errs)
	<-p.done
}
