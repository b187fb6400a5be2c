package flow

// Observer receives notifications at well-defined solver events. It exists
// so instrumentation, counting, or logging can be layered on top of the
// solver without being woven into its algorithmic methods. The zero value
// an implementer reaches for, NoopObserver, does nothing.
type Observer interface {
	OnRelabel(vertex int, newLevel int)
	OnDead(vertex int)
	OnEdgeStateChange(re ResidualEdge, admissible bool)
	OnAugment(source int, path []ResidualEdge, amount int64)
}

// NoopObserver implements Observer by doing nothing.
type NoopObserver struct{}

func (NoopObserver) OnRelabel(int, int)                  {}
func (NoopObserver) OnDead(int)                          {}
func (NoopObserver) OnEdgeStateChange(ResidualEdge, bool) {}
func (NoopObserver) OnAugment(int, []ResidualEdge, int64) {}

// CountingObserver accumulates monotone counters over a solve: relabels,
// dead-vertex events, admissible/inadmissible transitions, the path-length
// histogram of completed augmentations, and the routed-flow total. It feeds
// the benchmark record built by the benchmark package.
type CountingObserver struct {
	Relabels            int
	DeadMarks           int
	AdmissibleEvents    int
	InadmissibleEvents  int
	Augments            int
	PathLengthHistogram map[int]int
	RoutedFlow          int64
}

// NewCountingObserver returns a CountingObserver ready to use.
func NewCountingObserver() *CountingObserver {
	return &CountingObserver{PathLengthHistogram: make(map[int]int)}
}

func (c *CountingObserver) OnRelabel(int, int) { c.Relabels++ }
func (c *CountingObserver) OnDead(int)         { c.DeadMarks++ }

func (c *CountingObserver) OnEdgeStateChange(re ResidualEdge, admissible bool) {
	if admissible {
		c.AdmissibleEvents++
	} else {
		c.InadmissibleEvents++
	}
}

func (c *CountingObserver) OnAugment(source int, path []ResidualEdge, amount int64) {
	c.Augments++
	c.PathLengthHistogram[len(path)]++
	c.RoutedFlow += amount
}
