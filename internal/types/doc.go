/*
Package types defines the error taxonomy shared by every nibble widget.

# Overview

Widgets fail for a small, fixed set of reasons: the terminal could not be
set up, a frame could not be drawn, a style flag named something that does
not exist, a dimension was out of range, a file could not be read, or the
flags themselves did not make sense together.

Each reason is a Kind. Errors are created with New or Wrap and carry the
kind, a human message and an optional cause:

	return types.New(types.KindInvalidDimensions, "height must be greater than 0")

Callers test for a kind with errors.Is against the exported sentinels:

	if errors.Is(err, types.ErrInvalidDimensions) {
		...
	}

The message format is "<kind>: <message>", e.g.
"invalid dimensions: height must be greater than 0".
*/
package types
