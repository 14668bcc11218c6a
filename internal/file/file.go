package file

import "os"

// Exists returns true if a file exists at the specified path and false
// otherwise.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
