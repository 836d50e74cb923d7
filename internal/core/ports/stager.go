package ports

// Stager copies resolved dependencies into a staging root, mirroring their absolute paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Destination returns where path is placed below the staging root.
	Destination(path string) string
	// Stage copies path below the staging root unless it is already there.
	// It reports whether a copy happened.
	Stage(path string) (bool, error)
}

// StagerFactory binds a Stager to a staging root chosen at run time.
type StagerFactory interface {
	ForRoot(root string) Stager
}
