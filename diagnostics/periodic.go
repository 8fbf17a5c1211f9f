// Package diagnostics periodically audits a tree's invariants and
// reports its size and height, the way the teacher pack's logger
// package periodically reports connection statistics.
package diagnostics

import (
	"sync"
	"time"

	"github.com/tormol/rstartree/logger"
)

// auditable is the subset of *rtree.Tree[T] the auditor needs; kept as
// an interface so the auditor doesn't itself need to be generic over T.
type auditable interface {
	Audit() error
	Size() int
	Height() int
}

// Auditor periodically runs a tree's invariant audit and logs the
// outcome, backing off the interval between runs exponentially the way
// the teacher's periodic connection-stats logger does.
type Auditor struct {
	tree auditable
	log  *logger.Logger
	id   string
	m    sync.Mutex
	stop bool
}

// NewAuditor wraps tree with a periodic health auditor reporting
// through log. The first audit runs after minInterval, each subsequent
// one backing off towards maxInterval.
func NewAuditor(id string, tree auditable, log *logger.Logger, minInterval, maxInterval time.Duration) *Auditor {
	a := &Auditor{tree: tree, log: log, id: id}
	log.AddPeriodic(id, minInterval, maxInterval, a.run)
	return a
}

// run is invoked by the logger's periodic scheduler; it reports the
// tree's size and height and, if Audit finds a broken invariant, adds
// it to the same Info-level report instead of panicking — a diagnostic
// observes, it does not enforce.
func (a *Auditor) run(c *logger.Composer, sinceLast time.Duration) {
	a.m.Lock()
	stopped := a.stop
	a.m.Unlock()
	if stopped {
		return
	}
	size, height := a.tree.Size(), a.tree.Height()
	c.Writeln("%s: size=%d height=%d (since last check: %s)", a.id, size, height, sinceLast)
	if err := a.tree.Audit(); err != nil {
		c.Writeln("%s: invariant check failed: %s", a.id, err)
	}
}

// Stop removes the auditor from its logger's schedule.
func (a *Auditor) Stop() {
	a.m.Lock()
	a.stop = true
	a.m.Unlock()
	a.log.RemovePeriodic(a.id)
}
