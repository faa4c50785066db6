// Package costbasis computes capital gains for employee stock compensation
// under the UK "Section 104" pooled cost rules: every vesting event adds
// shares and allowable cost to a single pool, every disposal removes a
// proportional slice of the pooled cost and realizes a gain or loss against
// the sale proceeds.
//
// The computation is a pure batch transformation: raw records are decoded,
// normalized into a canonical chronological stream of events with their
// historical exchange rate attached, and folded through the pool. Any
// inconsistency (unknown column, unparseable date, uncovered date, oversell)
// aborts the whole run; a report with a silently wrong row is worse than no
// report.
package costbasis
