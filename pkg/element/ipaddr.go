package element

import (
	"net/netip"

	"go4.org/netipx"
)

// IPAddr is the Capability for net/netip.Addr. Discrete: the successor of
// an address is the next address in the same address family, via
// go4.org/netipx.AddrNext.
type IPAddr struct{}

func (IPAddr) Compare(a, b netip.Addr) int {
	return a.Compare(b)
}

func (IPAddr) Successor(a netip.Addr) (netip.Addr, bool) {
	next := netipx.AddrNext(a)
	if !next.IsValid() {
		return netip.Addr{}, false
	}
	return next, true
}

func (c IPAddr) Consecutive(a, b netip.Addr) bool {
	return DeriveConsecutive(c.Successor, c.Compare, a, b)
}
