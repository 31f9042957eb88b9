package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greyfall/stride/internal/infrastructure/config"
)

func TestTuningReloadAppliesBetweenSteps(t *testing.T) {
	cfg := &config.Tuning{Movement: config.MovementConfig{RunSpeed: 220}}
	ch := make(chan *config.Tuning, 1)
	p := &Playing{cfg: cfg, reload: ch}

	t.Run("empty channel is a no-op", func(t *testing.T) {
		p.applyPendingReload()
		assert.Equal(t, 220.0, cfg.Movement.RunSpeed)
	})

	t.Run("pending config is copied into the shared tuning", func(t *testing.T) {
		fresh := *cfg
		fresh.Movement.RunSpeed = 300
		ch <- &fresh

		p.applyPendingReload()

		assert.Equal(t, 300.0, cfg.Movement.RunSpeed)
	})

	t.Run("closed channel disables further reloads", func(t *testing.T) {
		close(ch)
		p.applyPendingReload()
		assert.Nil(t, p.reload)

		p.applyPendingReload()
		assert.Equal(t, 300.0, cfg.Movement.RunSpeed)
	})
}

func TestReloadDisabledWithoutChannel(t *testing.T) {
	cfg := &config.Tuning{Movement: config.MovementConfig{RunSpeed: 220}}
	p := &Playing{cfg: cfg}

	p.applyPendingReload()

	assert.Equal(t, 220.0, cfg.Movement.RunSpeed)
}
