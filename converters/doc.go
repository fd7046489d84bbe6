// Package converters exports core.Graph to other Go graph libraries.
//
// ToGonum builds a gonum simple.WeightedUndirectedGraph with one gonum node
// per position (ids in Position order) and returns the Mapping between the two
// id spaces. GonumShortestPath runs gonum's Dijkstra over that export, which
// gives an independent reference implementation to check searches against.
package converters
