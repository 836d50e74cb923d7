package ports

import "iter"

// TreeWalker enumerates the candidate binaries below an input path.
//
//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type TreeWalker interface {
	// Walk yields root itself when it is a regular file, or every regular file beneath it
	// when it is a directory. Anything else yields nothing.
	Walk(root string) iter.Seq[string]
}
