package worker

import (
	"time"

	"go.uber.org/zap"
)

type Remover interface {
	Remove(path string) error
}

// CleanupWorker removes asset files left behind by deleted catalog
// entries. Cleanup is best effort: failures are logged and dropped,
// never surfaced to the delete call that queued the path.
type CleanupWorker struct {
	in      chan string
	logger  *zap.Logger
	remover Remover
}

func NewCleanupWorker(logger *zap.Logger, remover Remover) *CleanupWorker {
	ch := make(chan string)

	return &CleanupWorker{
		in:      ch,
		logger:  logger,
		remover: remover,
	}
}

func (w *CleanupWorker) GetInChannel() chan<- string {
	return w.in
}

func (w *CleanupWorker) FlushPaths() {
	ticker := time.NewTicker(10 * time.Second)
	var paths []string

	removeAll := func() {
		w.logger.Info("Flushing asset removals", zap.Int("count", len(paths)))
		for _, p := range paths {
			if err := w.remover.Remove(p); err != nil {
				w.logger.Error("Cannot remove asset file", zap.String("path", p), zap.Error(err))
			}
		}
		paths = paths[:0]
	}

	for {
		select {
		case p := <-w.in:
			w.logger.Info("Got asset path to remove", zap.String("path", p))
			paths = append(paths, p)
			if len(paths) > 25 {
				removeAll()
			}
		case <-ticker.C:
			if len(paths) == 0 {
				continue
			}
			removeAll()
		}
	}
}
