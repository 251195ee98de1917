package nn

import (
	"errors"
	"fmt"

	"anadrome/internal/model"
)

// ErrConnectionLoop reports a dependency cycle among connections. A cycle
// of normal connections has no well-founded order at all; a cycle made
// entirely of recurrent connections is meaningful round-to-round but is
// not representable by a single flat firing order, so it is rejected the
// same way.
var ErrConnectionLoop = errors.New("connection loop detected")

// ConnectionOrder returns a permutation of connection indices that every
// evaluation round can follow. Two rules constrain the order:
//
//  1. A normal connection fires only after every connection feeding its
//     origin has fired, so the origin's accumulated sum is complete.
//  2. A recurrent connection fires before any connection that contributes
//     into its origin, so it reads the value standing there from the
//     previous round rather than a freshly overwritten one.
//
// Connections unrelated under both rules keep ascending-index order.
func ConnectionOrder(connections []model.ConnectionTemplate) ([]int, error) {
	n := len(connections)
	successors := make([][]int, n)
	pending := make([]int, n)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			ci := connections[i]
			cj := connections[j]

			// The origin of a normal connection has no unfired
			// inbound connections left.
			afterInbound := ci.Dest == cj.Origin && cj.Kind == model.ConnectionNormal

			// The destination has no unfired recurrent outbound
			// connections left.
			beforeOverwrite := ci.Kind == model.ConnectionRecurrent && ci.Origin == cj.Dest

			if afterInbound || beforeOverwrite {
				successors[i] = append(successors[i], j)
				pending[j]++
			}
		}
	}

	ready := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if pending[j] == 0 {
			ready = append(ready, j)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)
		for _, succ := range successors[next] {
			pending[succ]--
			if pending[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d connections cannot be ordered", ErrConnectionLoop, n-len(order), n)
	}
	return order, nil
}
