// SPDX-License-Identifier: MPL-2.0

// Package bootstrap implements the ensure-and-delegate flow behind the
// omniboot CLI: resolve the install root from the running executable,
// make sure launcher/start.py exists there (downloading it once from the
// canonical URL when absent), then hand execution off to a Python
// interpreter running that file.
//
// The package is organized into four concerns:
//   - rootdir.go: install root resolution (executable dir, symlink aware)
//   - fetch.go: HTTP client for the launcher source (single GET, streaming)
//   - ensure.go: existence gate plus atomic temp-file-and-rename install
//   - launch.go: interpreter lookup and argv-vector delegation
//
// bootstrap.go composes them into the Bootstrapper facade used by cmd.
package bootstrap
