package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/stride/internal/application/replay"
	"github.com/greyfall/stride/internal/application/system"
	"github.com/greyfall/stride/internal/domain/entity"
)

func TestRecorder(t *testing.T) {
	t.Run("records frames in order", func(t *testing.T) {
		r := NewRecorder("demo", &entity.Capabilities{Dash: true})

		r.RecordFrame(system.InputState{MoveX: 1})
		r.RecordFrame(system.InputState{JumpPressed: true, Jump: true})

		assert.Equal(t, 2, r.FrameCount())
		data := r.GetData()
		assert.Equal(t, "demo", data.Stage)
		assert.Equal(t, replay.CapabilityFlags{Dash: true}, data.Capabilities)
		assert.Equal(t, 0, data.Frames[0].F)
		assert.Equal(t, 1.0, data.Frames[0].MX)
		assert.Equal(t, 1, data.Frames[1].F)
		assert.True(t, data.Frames[1].JP)
	})

	t.Run("stop drops further frames", func(t *testing.T) {
		r := NewRecorder("demo", nil)
		r.RecordFrame(system.InputState{})
		r.Stop()
		r.RecordFrame(system.InputState{})

		assert.False(t, r.IsRecording())
		assert.Equal(t, 1, r.FrameCount())
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		r := NewRecorder("demo", &entity.Capabilities{WallStick: true})
		r.RecordFrame(system.InputState{MoveX: -1, DashPressed: true})

		require.NoError(t, r.Save(path))

		loaded, err := replay.LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, r.GetData(), *loaded)
	})

	t.Run("saving an empty recording fails", func(t *testing.T) {
		r := NewRecorder("demo", nil)
		err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
		assert.ErrorContains(t, err, "no frames")
	})
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
