// Package file provides a file-based DataFetcher implementation for the config package.
//
// Files are read through an afero.Fs, so the same fetcher serves the operating
// system filesystem in production and an in-memory filesystem in tests.
//
// The file is read at construction time and cached; later edits to the file are
// not observed. The configuration of a launch is therefore fixed for the whole run.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("res/paths.ini")(afero.NewOsFs())
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect a directory path and
// errors.Is(err, fs.ErrNotExist) to detect a missing file.
package file
