package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const maxUploadMemory = 32 << 20 // bytes buffered before spilling to disk

// stageUpload copies the named multipart file into the staging directory and
// returns its local path. An absent field returns an empty path and no error
// so optional uploads stay optional.
func stageUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("read %s upload: %w", field, err)
	}
	defer file.Close()

	staged, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("stage %s upload: %w", field, err)
	}

	if _, err := io.Copy(staged, file); err != nil {
		staged.Close()
		os.Remove(staged.Name())
		return "", fmt.Errorf("stage %s upload: %w", field, err)
	}

	if err := staged.Close(); err != nil {
		os.Remove(staged.Name())
		return "", fmt.Errorf("stage %s upload: %w", field, err)
	}

	return staged.Name(), nil
}
