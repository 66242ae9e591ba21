package util

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherFilePaths walks a directory and collects files matching any of the
// given extensions (e.g. ".mxl").
func GatherFilePaths(path string, extensions ...string) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			for _, ext := range extensions {
				if strings.HasSuffix(s, ext) {
					res = append(res, s)
					break
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns a map's keys in ascending order for deterministic
// iteration.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
