//go:build !unix

package extract

import "os"

// withContent reads path into memory and hands the bytes to fn.
func withContent(path string, fn func(data []byte)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fn(data)
	return nil
}
