package sitegen

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// CopyAssets copies the static asset tree (css, js, images) into the
// output directory, overwriting files from previous builds. A missing
// static directory is not an error.
func CopyAssets(staticDir, outDir string) error {
	info, err := os.Stat(staticDir)
	if os.IsNotExist(err) {
		zap.L().Warn("static directory not found, skipping assets",
			zap.String("dir", staticDir))
		return nil
	}
	if err != nil {
		return eris.Wrapf(err, "sitegen: stat %s", staticDir)
	}
	if !info.IsDir() {
		return eris.Errorf("sitegen: %s is not a directory", staticDir)
	}

	src := os.DirFS(staticDir)
	err = fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(outDir, path)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		return copyFile(src, path, dest)
	})
	if err != nil {
		return eris.Wrapf(err, "sitegen: copy assets from %s", staticDir)
	}

	zap.L().Info("static assets copied", zap.String("from", staticDir))
	return nil
}

func copyFile(src fs.FS, path, dest string) error {
	in, err := src.Open(path)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
