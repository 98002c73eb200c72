package ports

import "os"

// FileSystemPort abstracts the file access needed to read images and
// persist manifests.
type FileSystemPort interface {
	ReadFile(filePath string) ([]byte, error)
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	Exists(filePath string) (bool, error)
}
