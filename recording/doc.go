// Package recording captures chart scenes as ordered drawing commands.
//
// A scene is built once with a [Recorder] and frozen into an immutable
// [Recording]. The recording is the whole scene: playing it back to a
// [Backend] always produces the full picture from an empty canvas, so a
// re-render is a fresh recording, never a patch of the previous one.
//
// # Architecture
//
//   - Recorder: captures drawing operations as commands
//   - Recording: stores the ordered command list for playback
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 400)
//	rec.SetFillColor(paint.Background)
//	rec.FillRectangle(0, 0, 800, 400)
//
//	rec.Save()
//	rec.Translate(60, 40)
//	rec.SetFillColor(paint.Gold)
//	rec.FillRoundedRectangle(10, 20, 100, 260, 4)
//	rec.Restore()
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/ggchart/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.WriterBackend).WriteTo(w)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    _ "github.com/gogpu/ggchart/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/ggchart/recording/backends/svg"    // "svg"
//	)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
// Backends are single-use and not safe for concurrent use.
package recording
