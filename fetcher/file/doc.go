// Package file provides a file-based Fetcher implementation for the env
// package.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem. This
// keeps configuration data consistent throughout the application lifecycle.
//
// Usage:
//
//	fetcher, err := file.NewFetcher(".env")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Use errors.Is(err, file.ErrNotExist) to detect an absent file.
//   - Use errors.Is(err, file.ErrIsDirectory) to detect a directory path.
//   - All errors include the cleaned filepath; read failures wrap their cause.
package file
