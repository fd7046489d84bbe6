// Package graphfile reads and writes grid graphs as HCL documents.
//
// Format:
//
//	width  = 3
//	height = 3
//	start  = [0, 0]   # optional, defaults to [0, 0]
//	goal   = [2, 0]   # optional, defaults to [width-1, height-1]
//
//	node {            # optional, relabels one cell
//	  at    = [1, 1]
//	  label = "center"
//	}
//
//	link {
//	  from   = [0, 0]
//	  to     = [1, 0]
//	  weight = 5
//	}
//
// Every cell of the width×height grid gets a node labelled like the random
// generator labels them; links are undirected. Load and Parse return a graph
// with start and goal set, so node values are ready for a search.
package graphfile
