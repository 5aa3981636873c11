// Package resources contains functions to prepare paths for TestDS
// resources.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
package resources

import (
	"os"
	"path/filepath"
)

// the directory under the user's configuration directory where all
// resources live
const baseDir = "testds"

// JoinPath prepends the supplied path with the OS specific base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, baseDir, filepath.Join(path...))

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
