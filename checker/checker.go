package checker

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/arminbiere/satch/vec"
)

// Checker is a single-threaded, synchronous proof checker. One instance
// is owned by one caller; every verb below runs to completion before
// returning, and there is no cancellation — a fatal condition panics.
type Checker struct {
	space   literalSpace
	trail   vec.Vec[Lit]
	pending vec.Vec[Lit]

	inconsistent bool

	numLiveClauses int
	newUnits       int
	collections    int
	gcCooldown     int

	stats Stats

	verbose    bool
	verboseOut io.Writer

	logging bool
	logger  *zap.Logger

	leakCheck bool

	released bool
}

// Init returns a handle in the initial empty state.
func Init() *Checker {
	return &Checker{
		gcCooldown: gcInterval,
		verboseOut: os.Stderr,
	}
}

// requireLive is the invalid-usage gate every exported method starts
// with: a nil handle or a handle used after Release is a caller-contract
// violation, not a recoverable condition.
func (c *Checker) requireLive(op string) {
	if c == nil {
		panic(newInvalidUsage(op, "nil checker handle"))
	}
	if c.released {
		panic(newInvalidUsage(op, "checker already released"))
	}
}

// EnableVerbose turns on the GC-message and final-statistics output.
// It must not alter checking semantics.
func (c *Checker) EnableVerbose() {
	c.requireLive("enable-verbose")
	c.verbose = true
}

// EnableLogging turns on the per-verb structured clause dump. It must
// not alter checking semantics.
func (c *Checker) EnableLogging() {
	c.requireLive("enable-logging")
	c.logging = true
	if c.logger == nil {
		logger, err := zap.NewDevelopment()
		if err != nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// EnableLeakCheck toggles the leak check consulted at Release.
func (c *Checker) EnableLeakCheck() {
	c.requireLive("enable-leak-check")
	c.leakCheck = true
}

// AddLiteral imports an external literal and appends it to the pending
// clause scratchpad. e must be non-zero and not math.MinInt32 (the
// 32-bit INT_MIN); both violations panic.
func (c *Checker) AddLiteral(e int) {
	c.requireLive("add-literal")
	c.pushPending(e)
}

// AddOriginal installs the pending clause as an original clause of the
// formula: normalize, filter false literals, install by survivor count,
// maybe collect garbage.
func (c *Checker) AddOriginal() {
	c.requireLive("add-original")
	c.logVerb("original")
	defer c.clearPendingMarks()

	if c.inconsistent {
		return
	}
	if c.normalizePending() {
		return
	}
	lits := c.pending.Slice()
	survivors := partitionSurvivors(&c.space, lits)
	c.installClause(lits, survivors)
	c.maybeCollectGarbage()
	c.stats.OriginalsAdded++
}

// AddLearned verifies the pending clause is AT-implied by the current
// store, then installs it exactly as AddOriginal would. A clause that
// is not AT-implied is a verification failure and panics.
func (c *Checker) AddLearned() {
	c.requireLive("add-learned")
	c.logVerb("learned")
	defer c.clearPendingMarks()

	if c.inconsistent {
		return
	}
	if c.normalizePending() {
		return
	}
	if !c.checkImplied(c.pending.Slice()) {
		panic(newVerificationFailure("add-learned", c.formatExternalClause(c.pending.Slice())))
	}
	lits := c.pending.Slice()
	survivors := partitionSurvivors(&c.space, lits)
	c.installClause(lits, survivors)
	c.maybeCollectGarbage()
	c.stats.LearnedChecked++
}

// checkImplied runs the asymmetric-tautology check: assign the negation
// of each clause literal in turn and propagate, looking for either an
// already-satisfied literal or a propagation conflict. The trail used
// here is always temporary and is unwound before returning.
func (c *Checker) checkImplied(lits []Lit) bool {
	defer c.backtrackToEmpty()
	for _, l := range lits {
		v := c.space.value[l]
		if v > 0 {
			return true
		}
		if v == 0 {
			c.assign(l.Negation())
			if !c.propagate() {
				return true
			}
		}
	}
	return false
}

// installClause installs survivors[0:survivorCount] (plus the false
// literals partitionSurvivors moved to the tail) as a new clause record
// in the 2+ survivor case, or performs the unit/conflict handling for
// the 0 and 1 survivor cases.
func (c *Checker) installClause(lits []Lit, survivorCount int) {
	switch {
	case survivorCount == 0:
		c.inconsistent = true
	case survivorCount == 1:
		c.assign(lits[0])
		if c.propagate() {
			c.drainTrail()
		} else {
			c.backtrackToEmpty()
			c.inconsistent = true
		}
		c.newUnits++
	default:
		cl := newClause(lits)
		c.space.attach(cl, 0)
		c.space.attach(cl, 1)
		c.numLiveClauses++
	}
}

// Delete removes the clause exactly matching the pending literal set
// from the store. A tautological or already root-satisfied pending
// clause is a silent no-op, matching AddOriginal/AddLearned; otherwise
// no match is a verification failure and panics.
func (c *Checker) Delete() {
	c.requireLive("delete")
	c.logVerb("delete")
	defer c.clearPendingMarks()

	if c.inconsistent {
		return
	}
	if c.normalizePending() {
		return
	}
	target := c.findMatchingClause(c.pending.Len())
	if target == nil {
		panic(newVerificationFailure("delete", c.formatExternalClause(c.pending.Slice())))
	}
	c.space.detach(target.Lit(0), target)
	c.space.detach(target.Lit(1), target)
	c.numLiveClauses--
	c.stats.DeletionsProcessed++
}

// findMatchingClause scans, for each pending literal, that literal's
// watch list for a clause of the right size whose every literal is
// marked present — an exact multiset match on the normalized pending
// clause.
func (c *Checker) findMatchingClause(size int) *Clause {
	for _, l := range c.pending.Slice() {
		cur := c.space.watchHead[l]
		for cur != nil {
			pos := cur.posOf(l)
			if cur.Len() == size && c.allMarked(cur) {
				return cur
			}
			cur = cur.next[pos]
		}
	}
	return nil
}

func (c *Checker) allMarked(cl *Clause) bool {
	for i := 0; i < cl.Len(); i++ {
		if c.space.mark[cl.Lit(i)] == 0 {
			return false
		}
	}
	return true
}

// Release tears the checker down: backtrack, free every clause reached
// through the watch lists (tallying remained), free the tables, print
// statistics if verbose, and panic if leak checking is enabled and
// clauses remain in an otherwise-consistent session.
func (c *Checker) Release() {
	c.requireLive("release")
	c.backtrackToEmpty()
	c.detachAllSecondWatches()
	remained := c.releaseFirstWatchLists()
	c.stats.ClausesRemaining = remained

	if c.verbose {
		fmt.Fprint(c.verboseOut, c.stats.String())
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	c.released = true

	if c.leakCheck && !c.inconsistent && remained > 0 {
		panic(newVerificationFailure("release", leakMessage(remained)))
	}
}

func leakMessage(n int) string {
	if n == 1 {
		return "1 clause remains"
	}
	return fmt.Sprintf("%d clauses remain", n)
}

// releaseFirstWatchLists walks the (already second-watch-detached)
// position-0 lists, freeing every clause and tallying remained: a
// clause counts toward remained only if none of its literals is
// root-true, matching the semantics of P7.
func (c *Checker) releaseFirstWatchLists() int {
	remained := 0
	wh := c.space.watchHead
	for i := range wh {
		cur := wh[i]
		for cur != nil {
			next := cur.next[0]
			if !c.clauseSatisfied(cur) {
				remained++
			}
			cur = next
		}
		wh[i] = nil
	}
	c.space.value = nil
	c.space.mark = nil
	c.space.watchHead = nil
	return remained
}

func (c *Checker) formatExternalClause(lits []Lit) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = fmt.Sprintf("%d", exportLiteral(l))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// logVerb emits the structured per-verb dump Logging mode promises:
// the pending clause in external-literal form, tagged by verb kind,
// before any normalization has touched it.
func (c *Checker) logVerb(kind string) {
	if !c.logging || c.logger == nil {
		return
	}
	lits := make([]int, c.pending.Len())
	for i := 0; i < c.pending.Len(); i++ {
		lits[i] = exportLiteral(c.pending.At(i))
	}
	c.logger.Debug("checker verb", zap.String("verb", kind), zap.Ints("literals", lits))
}
