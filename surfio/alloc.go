package surfio

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var trailingDigits = regexp.MustCompile(`([0-9]+)$`)

// Allocate resolves a desired output name against the paths already claimed
// in this write batch. A name without an extension gets defaultExt. An
// unclaimed path is returned as-is; on collision the filename stem's
// trailing digit run is incremented (starting at 0 when there is none),
// probing upward until a free path is found. Stems that legitimately end in
// digits are still treated as a counter; that is a known limitation of the
// heuristic.
//
// Pure function of its inputs: the caller adds the returned path to claimed
// before allocating the next one.
func Allocate(desired string, claimed map[string]struct{}, defaultExt string) string {
	path := desired
	if filepath.Ext(path) == "" {
		path += defaultExt
	}
	if _, taken := claimed[path]; !taken {
		return path
	}

	ext := filepath.Ext(path)
	dir, file := filepath.Split(strings.TrimSuffix(path, ext))

	base := file
	next := 0
	if digits := trailingDigits.FindString(file); digits != "" {
		if v, err := strconv.Atoi(digits); err == nil {
			base = strings.TrimSuffix(file, digits)
			next = v + 1
		}
	}

	for {
		candidate := fmt.Sprintf("%s%s%d%s", dir, base, next, ext)
		if _, taken := claimed[candidate]; !taken {
			return candidate
		}
		next++
	}
}
