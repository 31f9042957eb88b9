package entity

// Capabilities is the ability registry handed to the simulation. It is
// an explicit dependency rather than a global: a nil registry degrades
// every gated feature to "disabled" instead of failing.
type Capabilities struct {
	WallStick  bool
	DoubleJump bool
	Dash       bool
	AirDash    bool
}

// HasWallStick reports whether wall stick/slide is enabled.
func (c *Capabilities) HasWallStick() bool {
	return c != nil && c.WallStick
}

// HasDoubleJump reports whether the double jump is enabled.
func (c *Capabilities) HasDoubleJump() bool {
	return c != nil && c.DoubleJump
}

// HasDash reports whether the ground dash is enabled.
func (c *Capabilities) HasDash() bool {
	return c != nil && c.Dash
}

// HasAirDash reports whether the air dash is enabled.
func (c *Capabilities) HasAirDash() bool {
	return c != nil && c.AirDash
}
