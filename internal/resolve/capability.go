package resolve

import (
	"dispatcher-generator/internal/model"
)

// ImplementsFactory reports whether the type named by key implements the
// adapter-factory capability named by target, searching the interface
// graph of every type on its supertype chain. Both the chain and the
// interface graph keep visited sets so pathological cycles in either
// terminate instead of looping forever.
func ImplementsFactory(u *model.Universe, key, target string) bool {
	visited := make(map[string]bool)
	walked := make(map[string]bool)

	for current := key; current != "" && !walked[current]; {
		walked[current] = true

		node := u.Node(current)
		if node == nil {
			return false
		}

		if searchInterfaces(u, node.Interfaces, target, visited) {
			return true
		}

		current = node.Supertype
	}

	return false
}

// searchInterfaces walks an interface list and everything reachable from
// it, breadth-first over each interface's own supertype/interface edges.
func searchInterfaces(u *model.Universe, ifaces []string, target string, visited map[string]bool) bool {
	queue := append([]string(nil), ifaces...)

	for len(queue) > 0 {
		iface := queue[0]
		queue = queue[1:]

		if visited[iface] {
			continue
		}

		visited[iface] = true

		if iface == target {
			return true
		}

		node := u.Node(iface)
		if node == nil {
			continue
		}

		queue = append(queue, node.Interfaces...)
		if node.Supertype != "" {
			queue = append(queue, node.Supertype)
		}
	}

	return false
}
