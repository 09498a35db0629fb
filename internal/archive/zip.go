package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Extension is appended to the configured archive name.
const Extension = ".cbr"

// Pack writes every regular file below stagingDir into a new zip archive at
// destPath and returns the number of entries written.
//
// Entry names are the file paths relative to stagingDir with forward
// slashes, so a file staged as stage/001.png is stored as "001.png".
// Entries are deflate-compressed.
//
// The archive is created exclusively: if destPath already exists Pack fails
// with an error matching fs.ErrExist and leaves the existing file untouched.
// If packing fails after the archive was created, the partial archive is
// removed.
//
// Example:
//
//	n, err := Pack(stagingDir, "Pepper_and_Carrot.cbr")
//	if errors.Is(err, fs.ErrExist) {
//	    // refuse to overwrite
//	}
func Pack(stagingDir, destPath string) (n int, err error) {
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(destPath)
		}
	}()
	defer out.Close()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(stagingDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(stagingDir, path)
		if err != nil {
			return err
		}
		if err := addFile(zw, path, filepath.ToSlash(rel)); err != nil {
			return fmt.Errorf("add %s: %w", rel, err)
		}
		n++
		return nil
	})
	if err != nil {
		zw.Close()
		return 0, err
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finish archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close archive: %w", err)
	}
	return n, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, file)
	return err
}
