package model

import "fmt"

// MillSettings holds the CNC parameters used when milling sockets into a blank.
type MillSettings struct {
	ToolDiameter      float64 `json:"tool_diameter"`       // End mill diameter in mm
	FeedRate          float64 `json:"feed_rate"`           // Cutting feed rate mm/min
	PlungeRate        float64 `json:"plunge_rate"`         // Plunge feed rate mm/min
	SpindleSpeed      int     `json:"spindle_speed"`       // RPM
	SafeZ             float64 `json:"safe_z"`              // Safe retract height mm
	SocketDepth       float64 `json:"socket_depth"`        // Total socket pocket depth mm
	PassDepth         float64 `json:"pass_depth"`          // Depth per pass mm
	SegmentsPerCircle int     `json:"segments_per_circle"` // Polygonization resolution for round sockets
	Profile           string  `json:"profile"`             // Name of the machine profile to use
}

func DefaultSettings() MillSettings {
	return MillSettings{
		ToolDiameter:      2.0,
		FeedRate:          800.0,
		PlungeRate:        250.0,
		SpindleSpeed:      18000,
		SafeZ:             5.0,
		SocketDepth:       12.0,
		PassDepth:         3.0,
		SegmentsPerCircle: 32,
		Profile:           "Generic",
	}
}

// MachineProfile defines a post-processor configuration for different CNC controllers.
type MachineProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       string `json:"units"` // "mm" or "inches"
	IsBuiltIn   bool   `json:"is_built_in"`

	// Startup codes
	StartCode    []string `json:"start_code"`    // Commands at start of file
	SpindleStart string   `json:"spindle_start"` // Spindle on command (e.g., "M3 S%d")
	SpindleStop  string   `json:"spindle_stop"`  // Spindle off command

	// Motion settings
	RapidMove string `json:"rapid_move"` // G0 or equivalent
	FeedMove  string `json:"feed_move"`  // G1 or equivalent

	// End codes
	EndCode []string `json:"end_code"` // Commands at end of file

	// Comment style
	CommentPrefix string `json:"comment_prefix"` // Comment start (e.g., ";")
	CommentSuffix string `json:"comment_suffix"` // Comment end (if needed)

	// Number formatting
	DecimalPlaces int `json:"decimal_places"`
}

// Built-in machine profiles
var MachineProfiles = []MachineProfile{
	{
		Name:          "Grbl",
		Description:   "Standard Grbl configuration (Arduino CNC shields)",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
	{
		Name:          "Mach3",
		Description:   "Mach3 CNC control software",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X0 Y0", "M5", "M30"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 4,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC (formerly EMC2)",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		Units:         "mm",
		IsBuiltIn:     true,
		StartCode:     []string{"G90", "G21"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		CommentSuffix: "",
		DecimalPlaces: 3,
	},
}

// CustomProfiles holds user-defined machine profiles loaded from disk.
var CustomProfiles []MachineProfile

// AllProfiles returns built-in profiles followed by custom ones.
func AllProfiles() []MachineProfile {
	all := make([]MachineProfile, 0, len(MachineProfiles)+len(CustomProfiles))
	all = append(all, MachineProfiles...)
	all = append(all, CustomProfiles...)
	return all
}

// GetProfile returns a machine profile by name, or the Generic profile if not found.
func GetProfile(name string) MachineProfile {
	for _, p := range AllProfiles() {
		if p.Name == name {
			return p
		}
	}
	return MachineProfiles[len(MachineProfiles)-1] // Generic (last built-in)
}

// GetProfileNames returns a list of all available profile names.
func GetProfileNames() []string {
	var names []string
	for _, p := range AllProfiles() {
		names = append(names, p.Name)
	}
	return names
}

// NewCustomProfile creates a custom profile inheriting the Generic defaults.
func NewCustomProfile(name string) MachineProfile {
	p := GetProfile("Generic")
	p.Name = name
	p.Description = ""
	p.IsBuiltIn = false
	return p
}

// AddCustomProfile adds or updates a custom profile. Names that collide with
// a built-in profile are rejected.
func AddCustomProfile(p MachineProfile) error {
	for _, b := range MachineProfiles {
		if b.Name == p.Name {
			return fmt.Errorf("profile name %q conflicts with a built-in profile", p.Name)
		}
	}
	p.IsBuiltIn = false
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == p.Name {
			CustomProfiles[i] = p
			return nil
		}
	}
	CustomProfiles = append(CustomProfiles, p)
	return nil
}

// RemoveCustomProfile removes a custom profile by name.
func RemoveCustomProfile(name string) error {
	for _, b := range MachineProfiles {
		if b.Name == name {
			return fmt.Errorf("cannot remove built-in profile %q", name)
		}
	}
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == name {
			CustomProfiles = append(CustomProfiles[:i], CustomProfiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("profile %q not found", name)
}
