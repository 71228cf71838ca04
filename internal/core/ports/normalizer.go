package ports

//go:generate go run go.uber.org/mock/mockgen -source=normalizer.go -destination=mocks/mock_normalizer.go -package=mocks

// PathNormalizer resolves a module specifier against a base directory into a
// canonical absolute path.
type PathNormalizer interface {
	// Normalize resolves input against base. An empty base means the process
	// working directory; an empty input normalizes to the base itself. It
	// fails with domain.ErrBaseUnresolvable when the base cannot be
	// determined.
	Normalize(input, base string) (string, error)
}
