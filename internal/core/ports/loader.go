package ports

//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// SourceLoader reads a whole module source file into memory.
type SourceLoader interface {
	// Load returns exactly the file content measured at open time. It fails
	// with domain.ErrSourceNotFound if path does not exist or denotes a
	// directory, and with domain.ErrSourceRead if the content cannot be
	// opened or fully read. No caching happens at this layer.
	Load(path string) ([]byte, error)
}
