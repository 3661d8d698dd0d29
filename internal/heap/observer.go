package heap

// Observer receives notifications of heap lifecycle events, decoupling the
// core from presentation and audit concerns (spec.md §6: "collaborators
// consume heap state for display and logging; the core never depends on
// them"). Grounded on the teacher's progress-subject pattern in
// internal/fibonacci/observers.go, generalized from Fibonacci computation
// progress to heap events.
//
//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	OnAllocate(name string, requested, blockSize int, isRoot bool)
	OnFree(name string, size int)
	OnSplit(originalSize, residualTarget int)
	OnMerge(mergedCount int)
	OnCollect(freed, totalCollections int)
	OnWarning(message string)
}

// NoopObserver implements Observer with no-op methods; it is the default
// when no Observer is supplied to New.
type NoopObserver struct{}

func (NoopObserver) OnAllocate(string, int, int, bool) {}
func (NoopObserver) OnFree(string, int)                {}
func (NoopObserver) OnSplit(int, int)                  {}
func (NoopObserver) OnMerge(int)                       {}
func (NoopObserver) OnCollect(int, int)                {}
func (NoopObserver) OnWarning(string)                  {}
