package multirange

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// FromIPSet converts a go4.org/netipx.IPSet — already itself a normalized,
// disjoint set of address ranges — into a Multirange[netip.Addr].
func FromIPSet(set *netipx.IPSet) Multirange[netip.Addr] {
	cap := element.IPAddr{}
	if set == nil {
		return Empty[netip.Addr]()
	}
	ranges := make([]rangeval.Range[netip.Addr], 0, len(set.Ranges()))
	for _, ipr := range set.Ranges() {
		r, err := rangeval.New(cap, ipr.From(), ipr.To(), rangeval.UpperInclusive(true))
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return New(cap, ranges...)
}

// ToIPSet is the converse of FromIPSet.
func ToIPSet(m Multirange[netip.Addr]) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range m.Ranges() {
		lo, ok := r.Lower()
		if !ok {
			return nil, fmt.Errorf("multirange: range %s has no finite lower bound, cannot become an IP range", r)
		}
		hi, ok := r.Upper()
		if !ok {
			return nil, fmt.Errorf("multirange: range %s has no finite upper bound, cannot become an IP range", r)
		}
		if !r.UpperInclusive() {
			hi = netipx.AddrPrior(hi)
			if !hi.IsValid() {
				return nil, fmt.Errorf("multirange: range %s has no predecessor below its upper bound", r)
			}
		}
		b.AddRange(netipx.IPRangeFrom(lo, hi))
	}
	return b.IPSet()
}
