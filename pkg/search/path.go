package search

// reconstructPath walks parent back-references from goal to the initial
// node and reverses the result (§4.10). Because parent is updated in place
// by duplicate resolution, this always reflects the best known predecessor
// chain at the moment goal is called.
func reconstructPath[S comparable](goal *Node[S]) []S {
	var path []S
	for n := goal; n != nil; n = n.Parent {
		path = append(path, n.State)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
