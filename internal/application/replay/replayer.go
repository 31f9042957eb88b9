package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/greyfall/stride/internal/application/system"
	"github.com/greyfall/stride/internal/domain/entity"
)

// Replayer feeds recorded inputs back into the simulation frame by
// frame.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a replayer over the given recording.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads a recording from a file.
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances. The
// second return is false once the recording is exhausted.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	in := r.data.Frames[r.frame].ToInputState()
	r.frame++
	return in, true
}

// CurrentFrame returns the current frame number.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the number of recorded frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the recording was made on.
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Capabilities reconstructs the ability set active at record time.
func (r *Replayer) Capabilities() *entity.Capabilities {
	f := r.data.Capabilities
	return &entity.Capabilities{
		WallStick:  f.WallStick,
		DoubleJump: f.DoubleJump,
		Dash:       f.Dash,
		AirDash:    f.AirDash,
	}
}

// Reset rewinds the replayer to the beginning.
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates an idle recording for tests.
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
		Capabilities: CapabilityFlags{
			WallStick: true, DoubleJump: true, Dash: true, AirDash: true,
		},
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}
