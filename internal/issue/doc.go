// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation for omniboot:
// ActionableError carries operation/resource context and fix suggestions,
// and a small catalog of markdown issue cards covers the known failure
// modes (launcher fetch failed, interpreter missing, launcher unwritable).
package issue
