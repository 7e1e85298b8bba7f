// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the page that chart scenes are mounted on.
//
// A [Page] owns a set of named mount points. Each mount point holds at most
// one immutable [recording.Recording]; mounting replaces it in a single
// step, so readers see either the previous scene or the new one and never
// a partial scene. Mounting on an identifier the page does not have is a
// silent no-op.
//
// # Rendering
//
// A mounted scene is played back with [Page.Render] to any
// recording.Backend. [Page.WriteHTML] writes a complete HTML document with
// every mount inlined as SVG, in the order the mounts were added.
//
// # Navigation
//
// [ActiveSection] selects the navigation entry to highlight for a scroll
// position.
//
// # Thread Safety
//
// Page is safe for concurrent use. Mounts are guarded by a read-write
// mutex; rendering only reads the immutable Recording.
package surface
