// Package checker implements an online proof checker for propositional
// CNF formulas, in the style of the DRUP dialect of DRAT. It is meant
// to sit beside a DRUP-emitting SAT solver and independently verify,
// without trusting the solver, that every clause it learns is
// asymmetric-tautology implied by the current clause database, and that
// every clause it asks to delete is actually present.
//
// Typical use:
//
//	c := checker.Init()
//	defer c.Release()
//
//	c.AddLiteral(1)
//	c.AddLiteral(2)
//	c.AddOriginal() // installs the clause {1, 2}
//
//	c.AddLiteral(-1)
//	c.AddOriginal() // a unit clause; forces literal 2 via propagation
//
//	c.AddLiteral(2)
//	c.AddLearned() // {2} is trivially AT-implied now
//
// A verification failure — a learned clause that is not AT-implied, or
// a delete with no matching clause in the store — panics with a
// *checker.CheckerError. There is no recovery path inside the core: the
// checker exists to catch solver bugs, and a caught bug is fatal by
// design.
package checker
