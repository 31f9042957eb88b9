package main

import (
	"log"

	"github.com/greyfall/stride/internal/application/replay"
	"github.com/greyfall/stride/internal/application/sim"
)

// runHeadless steps the full recording through the simulation without a
// window and reports the final state. Because the simulation is
// deterministic, the output is a fingerprint of the recorded run.
func runHeadless(simulator *sim.Simulator, replayer *replay.Replayer) {
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		simulator.Step(input)
	}

	snap := simulator.Snapshot()
	log.Printf("Replay complete: %d frames", replayer.TotalFrames())
	log.Printf("Final position: (%.3f, %.3f)", snap.Pos.X(), snap.Pos.Y())
	log.Printf("Final velocity: (%.3f, %.3f)", snap.Vel.X(), snap.Vel.Y())
	log.Printf("Grounded=%v wall=%s jump=%s", snap.Grounded, snap.WallPhase, snap.JumpPhase)
	log.Printf("Resources: jumps=%d dashes=%d airdashes=%d",
		snap.JumpsRemaining, snap.DashesRemaining, snap.AirDashesRemaining)
}
