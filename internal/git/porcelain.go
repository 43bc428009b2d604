package git

import (
	"bytes"
	"errors"
	"fmt"

	"gitsift/internal/domain"
)

// ErrMalformedStatus is returned when git status output cannot be parsed
var ErrMalformedStatus = errors.New("malformed git status output")

// ParsePorcelain parses the output of `git status --porcelain=v1 -z`.
//
// Records are NUL-terminated and look like "XY PATH". Renames and copies
// are followed by one more record holding the original path.
func ParsePorcelain(output []byte) ([]domain.FileStatus, error) {
	records := bytes.Split(output, []byte{0})
	files := make([]domain.FileStatus, 0, len(records))

	for i := 0; i < len(records); i++ {
		rec := records[i]
		if len(rec) == 0 {
			continue
		}
		if len(rec) < 4 || rec[2] != ' ' {
			return nil, fmt.Errorf("%w: record %q", ErrMalformedStatus, rec)
		}

		file := domain.FileStatus{
			Staged:   rec[0],
			Unstaged: rec[1],
			Path:     string(rec[3:]),
		}

		if isRenameOrCopy(file.Staged) || isRenameOrCopy(file.Unstaged) {
			i++
			if i >= len(records) || len(records[i]) == 0 {
				return nil, fmt.Errorf("%w: missing original path for %q", ErrMalformedStatus, file.Path)
			}
			file.OrigPath = string(records[i])
		}

		files = append(files, file)
	}

	return files, nil
}

func isRenameOrCopy(code byte) bool {
	return code == 'R' || code == 'C'
}
