package deployconfig

import (
	"os"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// Writer persists deployment configs into a directory.
type Writer struct {
	// Dir must already exist; it is never created.
	Dir string

	// Validator, when set, rejects configs before anything is written.
	Validator *Validator
}

// Write replaces <Dir>/<network>.json with c and returns the path.
func (w *Writer) Write(network string, c DeploymentConfig) (string, error) {
	if w.Validator != nil {
		if err := w.Validator.Validate(c); err != nil {
			return "", err
		}
	}

	data, err := c.Encode()
	if err != nil {
		return "", oerrors.WrapCause(oerrors.ErrWrite, err, "encoding deployment config")
	}

	path := Path(w.Dir, network)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", oerrors.WrapCause(oerrors.ErrWrite, err, "writing "+path)
	}
	return path, nil
}
