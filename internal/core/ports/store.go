package ports

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ResourceStore persists channel values to durable storage.
type ResourceStore interface {
	// Put replaces the contents of resource name under root with value.
	// Readers never observe a partially written value.
	Put(root, name, value string) error
}
