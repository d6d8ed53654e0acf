package file

import (
	"context"
	"os"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/m-mizutani/goerr/v2"
)

// Source reads issue records from a local JSON export. The file is read
// again on every fetch so edits show up on the next refresh.
type Source struct {
	path string
}

var _ interfaces.IssueSource = (*Source)(nil)

// New creates a Source reading path
func New(path string) *Source {
	return &Source{path: path}
}

// Name returns file:<path>
func (s *Source) Name() string {
	return "file:" + s.path
}

// Fetch reads the file and strips code fences the same way issue bodies are
// stripped
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "fetch cancelled",
			goerr.V("path", s.path),
			goerr.V("cause", err.Error()))
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(model.ErrAcquisition, "export file not found",
				goerr.V("path", s.path))
		}
		return nil, goerr.Wrap(model.ErrAcquisition, "failed to read export file",
			goerr.V("path", s.path),
			goerr.V("cause", err.Error()))
	}

	return []byte(engine.StripFences(string(data))), nil
}
