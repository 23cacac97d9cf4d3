// Package kanren implements a relational (logic) programming engine in the
// miniKanren tradition.
//
// A program is built from goal constructors — Eq, Lall, Lany, Conde, Fresh,
// Neq, Typeo, Membero, Conso, Appendo, Reduceo, Walko and friends — and
// executed with Run, which asks for up to n solutions binding one or more
// logic variables.
//
// The engine is single-threaded and cooperative: a Goal is a pure function
// from a State to a lazy Stream of States, and Run is the only thing that
// pulls on that stream. There is no cut, no general finite-domain solver,
// and no depth-first search: disjunction interleaves fairly so that an
// infinite branch never starves a finite one sitting next to it.
package kanren
