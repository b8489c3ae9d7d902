// Package pcbgraph — see types.go for the node/edge model.
package pcbgraph
