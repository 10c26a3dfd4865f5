package fixturefile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

// Reader decodes fixture files below a data directory. Unreadable files are
// logged and reported as missing; callers treat them as empty record sets.
type Reader struct {
	root      string
	logger    *logging.Logger
	validator *validator.Validate
}

func NewReader(root string, logger *logging.Logger) *Reader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reader{
		root:      root,
		logger:    logger.With("component", "fixturefile", "data_dir", root),
		validator: validator.New(),
	}
}

func (r *Reader) Root() string {
	return r.root
}

// ReadJSON decodes rel into dst and reports whether it succeeded.
func (r *Reader) ReadJSON(rel string, dst any) bool {
	path := filepath.Join(r.root, filepath.FromSlash(rel))
	raw, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error("read fixture file failed", "file", rel, "error", err)
		return false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		r.logger.Error("decode fixture file failed", "file", rel, "error", err)
		return false
	}
	return true
}

// List returns the sorted *.json file names of dir.
func (r *Reader) List(dir string) []string {
	entries, err := os.ReadDir(filepath.Join(r.root, filepath.FromSlash(dir)))
	if err != nil {
		r.logger.Error("list fixture dir failed", "dir", dir, "error", err)
		return nil
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		out = append(out, entry.Name())
	}
	sort.Strings(out)
	return out
}

// Valid checks the required keys of a decoded record.
func (r *Reader) Valid(record any) error {
	if err := r.validator.Struct(record); err != nil {
		return fmt.Errorf("invalid fixture record: %w", err)
	}
	return nil
}
