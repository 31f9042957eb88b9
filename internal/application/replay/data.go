package replay

import "github.com/greyfall/stride/internal/application/system"

// FrameInput records the sampled input of a single fixed step. Field
// names are short to keep long recordings small on disk.
type FrameInput struct {
	F  int     `json:"f"`            // frame number
	MX float64 `json:"mx,omitempty"` // move axis X in [-1, 1]
	MY float64 `json:"my,omitempty"` // move axis Y in [-1, 1]
	J  bool    `json:"j,omitempty"`  // jump held
	JP bool    `json:"jp,omitempty"` // jump pressed edge
	JR bool    `json:"jr,omitempty"` // jump released edge
	DP bool    `json:"dp,omitempty"` // dash pressed edge
	AP bool    `json:"ap,omitempty"` // attack pressed edge
}

// ToInputState converts the recorded frame back into a simulation
// input.
func (fi FrameInput) ToInputState() system.InputState {
	return system.InputState{
		MoveX:         fi.MX,
		MoveY:         fi.MY,
		Jump:          fi.J,
		JumpPressed:   fi.JP,
		JumpReleased:  fi.JR,
		DashPressed:   fi.DP,
		AttackPressed: fi.AP,
	}
}

// FromInputState captures a simulation input as a recorded frame.
func FromInputState(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.MoveX,
		MY: in.MoveY,
		J:  in.Jump,
		JP: in.JumpPressed,
		JR: in.JumpReleased,
		DP: in.DashPressed,
		AP: in.AttackPressed,
	}
}

// ReplayData contains everything needed to reproduce a session: the
// stage, the capability set, and the per-frame inputs. The simulation
// is deterministic, so no physics state is stored.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`

	Capabilities CapabilityFlags `json:"capabilities"`
}

// CapabilityFlags mirrors the ability toggles active at record time.
type CapabilityFlags struct {
	WallStick  bool `json:"wallStick"`
	DoubleJump bool `json:"doubleJump"`
	Dash       bool `json:"dash"`
	AirDash    bool `json:"airDash"`
}
