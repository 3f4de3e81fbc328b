package main

import (
	"github.com/charmbracelet/log"

	"github.com/lox/chinesepoker/internal/index"
)

// loadOrBuildIndices returns the 3-card and 5-card score indices, loading
// from disk when paths are given and building from scratch otherwise. The
// 5-card build covers all 2,598,960 combinations and takes a few seconds;
// persisting with `generate` avoids repeating it.
func loadOrBuildIndices(path3, path5 string, logger *log.Logger) (*index.Index, *index.Index, error) {
	var idx3, idx5 *index.Index
	var err error

	if path3 != "" {
		logger.Debug("loading 3-card index", "path", path3)
		idx3, err = index.Load(path3, 3)
	} else {
		logger.Debug("building 3-card index")
		idx3, err = index.Build(3)
	}
	if err != nil {
		return nil, nil, err
	}

	if path5 != "" {
		logger.Debug("loading 5-card index", "path", path5)
		idx5, err = index.Load(path5, 5)
	} else {
		logger.Debug("building 5-card index")
		idx5, err = index.Build(5)
	}
	if err != nil {
		return nil, nil, err
	}

	return idx3, idx5, nil
}
