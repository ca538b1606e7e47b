package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/logicossoftware/go-pngyinx"
)

// readFile loads path, refusing files above the configured size limit.
func (a *app) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := pngyinx.ReadBytes(f, a.readOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.WithField("path", path).WithField("bytes", len(b)).Debug("read file")
	return b, nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so a failed write never leaves a truncated image behind. The mode of
// an existing file is kept.
func (a *app) writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
		if a.cfg.Backup {
			if err := copyFile(path, path+".bak", mode); err != nil {
				return fmt.Errorf("backup: %w", err)
			}
			a.log.WithField("path", path+".bak").Info("backup written")
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	a.log.WithField("path", path).WithField("bytes", len(data)).Debug("wrote file")
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
