package adapter

import "os"

// FileSystem reads local configuration files such as the token blacklist
//
//go:generate mockgen -source=filesystem.go -destination=../mocks/filesystem.go -package=mocks -mock_names=FileSystem=MockFileSystem
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

type osFileSystem struct{}

// NewFileSystem returns a FileSystem backed by the os package
func NewFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec,G304
}
