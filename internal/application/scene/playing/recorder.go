package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/greyfall/stride/internal/application/replay"
	"github.com/greyfall/stride/internal/application/system"
	"github.com/greyfall/stride/internal/domain/entity"
)

// Recorder captures per-frame inputs for deterministic playback.
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for the given stage and ability set.
func NewRecorder(stage string, caps *entity.Capabilities) *Recorder {
	var flags replay.CapabilityFlags
	if caps != nil {
		flags = replay.CapabilityFlags{
			WallStick:  caps.WallStick,
			DoubleJump: caps.DoubleJump,
			Dash:       caps.Dash,
			AirDash:    caps.AirDash,
		}
	}
	return &Recorder{
		data: replay.ReplayData{
			Version:      "1.0",
			Stage:        stage,
			StartTime:    time.Now().Format(time.RFC3339),
			Frames:       make([]replay.FrameInput, 0, 3600),
			Capabilities: flags,
		},
		recording: true,
	}
}

// RecordFrame appends one frame of input.
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.FromInputState(r.frame, input))
	r.frame++
}

// Save writes the recording to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording reports whether recording is active.
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames.
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recording (for testing).
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a timestamped replay filename.
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
