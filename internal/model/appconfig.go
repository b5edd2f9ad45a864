package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new designs
	DefaultMaxRadius float64 `json:"default_max_radius"` // Workspace cap (mm)
	DefaultDivisions int     `json:"default_divisions"`  // Division count for new rings, 0 = continuous

	// Default CNC settings applied to new jobs
	DefaultToolDiameter float64 `json:"default_tool_diameter"`
	DefaultFeedRate     float64 `json:"default_feed_rate"`
	DefaultPlungeRate   float64 `json:"default_plunge_rate"`
	DefaultSpindleSpeed int     `json:"default_spindle_speed"`
	DefaultSafeZ        float64 `json:"default_safe_z"`
	DefaultSocketDepth  float64 `json:"default_socket_depth"`
	DefaultPassDepth    float64 `json:"default_pass_depth"`
	DefaultProfile      string  `json:"default_profile"`

	// Application preferences
	RecentDesigns []string `json:"recent_designs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMaxRadius:    DefaultMaxRadius,
		DefaultDivisions:    0,
		DefaultToolDiameter: defaults.ToolDiameter,
		DefaultFeedRate:     defaults.FeedRate,
		DefaultPlungeRate:   defaults.PlungeRate,
		DefaultSpindleSpeed: defaults.SpindleSpeed,
		DefaultSafeZ:        defaults.SafeZ,
		DefaultSocketDepth:  defaults.SocketDepth,
		DefaultPassDepth:    defaults.PassDepth,
		DefaultProfile:      defaults.Profile,
		RecentDesigns:       []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a MillSettings
// struct. Used when starting a new job so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *MillSettings) {
	s.ToolDiameter = c.DefaultToolDiameter
	s.FeedRate = c.DefaultFeedRate
	s.PlungeRate = c.DefaultPlungeRate
	s.SpindleSpeed = c.DefaultSpindleSpeed
	s.SafeZ = c.DefaultSafeZ
	s.SocketDepth = c.DefaultSocketDepth
	s.PassDepth = c.DefaultPassDepth
	s.Profile = c.DefaultProfile
}

// RememberDesign records path at the front of the recent-designs list,
// deduplicating and keeping at most max entries.
func (c *AppConfig) RememberDesign(path string, max int) {
	out := []string{path}
	for _, p := range c.RecentDesigns {
		if p != path && len(out) < max {
			out = append(out, p)
		}
	}
	c.RecentDesigns = out
}
