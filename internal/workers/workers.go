package workers

// Workers aggregates background workers and starts them in registration
// order.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate from the given workers.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
