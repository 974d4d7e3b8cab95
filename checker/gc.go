package checker

import (
	"fmt"
	"math"
)

// gcInterval is the fixed cooldown unit between garbage collection
// attempts, matching the reference checker's GARBAGE_COLLECTION_INTERVAL.
const gcInterval = 10000

// maybeCollectGarbage decrements the cooldown unconditionally — this
// runs after every add-original/add-learned install, regardless of
// which survivor case was taken — and runs a collection only when the
// cooldown has elapsed, at least one new unit has arrived since the
// last collection, and the checker is still consistent.
func (c *Checker) maybeCollectGarbage() {
	c.gcCooldown--
	if c.gcCooldown > 0 {
		return
	}
	if c.newUnits == 0 {
		return
	}
	if c.inconsistent {
		return
	}
	c.runGarbageCollection()
}

// runGarbageCollection reclaims every clause that has become
// root-satisfied since the last collection, via the four-step protocol:
// detach every second watch so each live clause is reachable from
// exactly one list; sweep that single-watch view for satisfied clauses;
// reconnect the second watch of every survivor; reset bookkeeping and
// reschedule.
func (c *Checker) runGarbageCollection() {
	c.detachAllSecondWatches()
	survivors := c.sweepSatisfiedClauses()
	for _, cl := range survivors {
		c.space.attach(cl, 1)
	}
	c.newUnits = 0
	c.collections++
	c.stats.Collections++
	c.scheduleNextCollection()
	if c.verbose {
		fmt.Fprintf(c.verboseOut, "c garbage collection %d: %d clauses remain\n", c.collections, c.numLiveClauses)
	}
}

// detachAllSecondWatches walks every literal's watch list and unlinks
// any clause reached there via its second watched position, leaving
// every live clause reachable from exactly one list: that of its
// position-0 literal.
func (c *Checker) detachAllSecondWatches() {
	wh := c.space.watchHead
	for i := range wh {
		l := Lit(i)
		var prev *Clause
		var prevPos int
		cur := wh[l]
		for cur != nil {
			pos := cur.posOf(l)
			next := cur.next[pos]
			if pos == 1 {
				if prev == nil {
					wh[l] = next
				} else {
					prev.next[prevPos] = next
				}
			} else {
				prev, prevPos = cur, pos
			}
			cur = next
		}
	}
}

// sweepSatisfiedClauses walks the now single-watch (position-0-only)
// lists, freeing any clause that has a root-true literal and collecting
// every survivor for the reconnection pass.
func (c *Checker) sweepSatisfiedClauses() []*Clause {
	wh := c.space.watchHead
	var survivors []*Clause
	for i := range wh {
		var prev *Clause
		cur := wh[i]
		for cur != nil {
			next := cur.next[0]
			if c.clauseSatisfied(cur) {
				if prev == nil {
					wh[i] = next
				} else {
					prev.next[0] = next
				}
				c.numLiveClauses--
				c.stats.ClausesCollected++
			} else {
				survivors = append(survivors, cur)
				prev = cur
			}
			cur = next
		}
	}
	return survivors
}

func (c *Checker) clauseSatisfied(cl *Clause) bool {
	for i := 0; i < cl.Len(); i++ {
		if c.space.value[cl.Lit(i)] > 0 {
			return true
		}
	}
	return false
}

// scheduleNextCollection sets the cooldown for the next collection
// attempt, saturating at the largest representable int rather than
// wrapping. c.collections has already been bumped for the collection
// that just ran, so this is GC_INTERVAL times the collections-so-far
// count, not collections-so-far+1.
func (c *Checker) scheduleNextCollection() {
	c.gcCooldown = saturatingMul(gcInterval, c.collections)
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	result := a * b
	if result/a != b {
		return math.MaxInt
	}
	return result
}
