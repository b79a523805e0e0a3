//go:build unix

package extract

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// withContent maps path read-only and hands the bytes to fn. The mapping and
// the file handle are released before withContent returns, so fn must copy
// anything it keeps. Files that cannot be mapped (empty files, special files,
// filesystems without mmap) are read into memory instead.
func withContent(path string, fn func(data []byte)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= 0 || !info.Mode().IsRegular() || int64(int(size)) != size {
		return readAll(f, fn)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return readAll(f, fn)
	}
	defer unix.Munmap(data)

	fn(data)
	return nil
}

func readAll(r io.Reader, fn func(data []byte)) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	fn(data)
	return nil
}
