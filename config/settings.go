package config

// FMVMode is how intro and briefing videos are scaled.
type FMVMode int

const (
	FMVFullscreen FMVMode = iota
	FMV1x
	FMV2x
	FMVMax // Must be last
)

func (m FMVMode) String() string {
	switch m {
	case FMVFullscreen:
		return "Fullscreen"
	case FMV1x:
		return "1×"
	case FMV2x:
		return "2×"
	default:
		return "Unsupported"
	}
}

// ScanlineMode is the video scanline overlay.
type ScanlineMode int

const (
	ScanlinesOff ScanlineMode = iota
	Scanlines50
	ScanlinesBlack
)

func (m ScanlineMode) String() string {
	switch m {
	case ScanlinesOff:
		return "Off"
	case Scanlines50:
		return "50%"
	case ScanlinesBlack:
		return "Black"
	default:
		return "Unsupported"
	}
}

// DifficultyLevel is the campaign difficulty.
type DifficultyLevel int

const (
	DifficultyEasy DifficultyLevel = iota
	DifficultyNormal
	DifficultyHard
	DifficultyInsane
)

func (d DifficultyLevel) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyInsane:
		return "Insane"
	default:
		return "Unsupported"
	}
}

// AIDifficulty is the skill of computer players in skirmish games.
type AIDifficulty int

const (
	AIEasy AIDifficulty = iota
	AIMedium
	AIHard
	AIInsane
)

func (d AIDifficulty) String() string {
	switch d {
	case AIEasy:
		return "Easy"
	case AIMedium:
		return "Medium"
	case AIHard:
		return "Hard"
	case AIInsane:
		return "Insane"
	default:
		return "Unsupported"
	}
}

// PowerLevel is the oil derrick output in skirmish games.
type PowerLevel int

const (
	PowerLow PowerLevel = iota
	PowerMedium
	PowerHigh
)

func (p PowerLevel) String() string {
	switch p {
	case PowerLow:
		return "Low Power Levels"
	case PowerMedium:
		return "Medium Power Levels"
	case PowerHigh:
		return "High Power Levels"
	default:
		return "Unsupported"
	}
}

// BaseLevel is what each player starts a skirmish game with.
type BaseLevel int

const (
	BaseNone BaseLevel = iota
	BaseBasic
	BaseAdvanced
)

func (b BaseLevel) String() string {
	switch b {
	case BaseNone:
		return "Start with No Bases"
	case BaseBasic:
		return "Start with Bases"
	case BaseAdvanced:
		return "Start with Advanced Bases"
	default:
		return "Unsupported"
	}
}

// AllianceMode controls whether players may form alliances.
type AllianceMode int

const (
	AllianceNone AllianceMode = iota
	AllianceAllowed
	AllianceFixedTeams
)

func (a AllianceMode) String() string {
	switch a {
	case AllianceNone:
		return "No Alliances"
	case AllianceAllowed:
		return "Allow Alliances"
	case AllianceFixedTeams:
		return "Locked Teams"
	default:
		return "Unsupported"
	}
}

// SettingsConfig is the user-editable configuration. It is persisted between
// runs and every title screen control reads and writes it through the
// accessors below.
type SettingsConfig struct {
	Fullscreen   bool `json:"fullscreen"`
	Screen       int  `json:"screen"`
	Width        int  `json:"width"`
	Height       int  `json:"height"`
	Antialiasing int  `json:"antialiasing"`
	TextureSize  int  `json:"textureSize"`
	Vsync        bool `json:"vsync"`

	FMVMode   FMVMode      `json:"fmvMode"`
	Scanlines ScanlineMode `json:"scanlines"`
	Subtitles bool         `json:"subtitles"`
	Shadows   bool         `json:"shadows"`
	RotRadar  bool         `json:"rotateRadar"`

	InvertMouse       bool `json:"invertMouse"`
	TrapCursor        bool `json:"trapCursor"`
	RightClickOrders  bool `json:"rightClickOrders"`
	MiddleClickRotate bool `json:"middleClickRotate"`
	ColouredCursor    bool `json:"colouredCursor"`

	Difficulty  DifficultyLevel `json:"difficulty"`
	UIVolume    float64         `json:"uiVolume"`
	FXVolume    float64         `json:"fxVolume"`
	MusicVolume float64         `json:"musicVolume"`
	SPColour    int             `json:"spColour"`
	MPColour    int             `json:"mpColour"`
	ScrollSpeed int             `json:"scrollSpeed"`
	Language    string          `json:"language"`

	// Skirmish setup remembered between games.
	SkirmishMap     string       `json:"skirmishMap"`
	SkirmishPlayers int          `json:"skirmishPlayers"`
	AIDifficulty    AIDifficulty `json:"aiDifficulty"`
	Power           PowerLevel   `json:"power"`
	Bases           BaseLevel    `json:"bases"`
	Alliances       AllianceMode `json:"alliances"`
}

// Settings is the global user configuration
var Settings SettingsConfig

// DefaultSettings returns the configuration used on first start.
func DefaultSettings() SettingsConfig {
	return SettingsConfig{
		Fullscreen:      false,
		Width:           1024,
		Height:          768,
		TextureSize:     1024,
		Vsync:           true,
		FMVMode:         FMV2x,
		Subtitles:       true,
		Shadows:         true,
		RotRadar:        true,
		ColouredCursor:  true,
		Difficulty:      DifficultyNormal,
		UIVolume:        1.0,
		FXVolume:        1.0,
		MusicVolume:     0.75,
		ScrollSpeed:     1600,
		SkirmishPlayers: 2,
		AIDifficulty:    AIMedium,
		Power:           PowerMedium,
		Bases:           BaseBasic,
		Alliances:       AllianceNone,
	}
}

func init() {
	Settings = DefaultSettings()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (s *SettingsConfig) SetUIVolume(v float64)    { s.UIVolume = clampVolume(v) }
func (s *SettingsConfig) SetFXVolume(v float64)    { s.FXVolume = clampVolume(v) }
func (s *SettingsConfig) SetMusicVolume(v float64) { s.MusicVolume = clampVolume(v) }

// SetSPColour stores the single player colour. Colours 1 to 3 are not
// offered in campaign games and fall back to 0.
func (s *SettingsConfig) SetSPColour(c int) {
	if c >= 1 && c <= 3 {
		c = 0
	}
	s.SPColour = c
}

// SetMPColour stores the multiplayer colour, -1 meaning random.
func (s *SettingsConfig) SetMPColour(c int) {
	if c < -1 || c >= Frontend.MaxPlayersInGUI {
		c = -1
	}
	s.MPColour = c
}

// SetScrollSpeed stores the camera scroll speed. Zero is not a usable
// speed and is replaced by the slowest one.
func (s *SettingsConfig) SetScrollSpeed(v int) {
	if v <= 0 {
		v = 100
	}
	s.ScrollSpeed = v
}

// SetResolution stores the screen index and window size together.
func (s *SettingsConfig) SetResolution(screen, width, height int) {
	s.Screen = screen
	s.Width = width
	s.Height = height
}

// inRange reports whether v lies in [min, max].
func inRange[T ~int](v, min, max T) bool {
	return v >= min && v <= max
}

// Normalize brings every value into the range the menus can show. Enums
// outside their range fall back to the defaults; an older or hand edited
// settings file must not break a screen.
func (s *SettingsConfig) Normalize() {
	def := DefaultSettings()

	if !inRange(s.FMVMode, FMVFullscreen, FMVMax-1) {
		s.FMVMode = def.FMVMode
	}
	if !inRange(s.Scanlines, ScanlinesOff, ScanlinesBlack) {
		s.Scanlines = def.Scanlines
	}
	if !inRange(s.Difficulty, DifficultyEasy, DifficultyInsane) {
		s.Difficulty = def.Difficulty
	}
	if !inRange(s.AIDifficulty, AIEasy, AIInsane) {
		s.AIDifficulty = def.AIDifficulty
	}
	if !inRange(s.Power, PowerLow, PowerHigh) {
		s.Power = def.Power
	}
	if !inRange(s.Bases, BaseNone, BaseAdvanced) {
		s.Bases = def.Bases
	}
	if !inRange(s.Alliances, AllianceNone, AllianceFixedTeams) {
		s.Alliances = def.Alliances
	}

	s.SetSPColour(s.SPColour)
	s.SetMPColour(s.MPColour)
	s.SetScrollSpeed(s.ScrollSpeed)
	s.SetUIVolume(s.UIVolume)
	s.SetFXVolume(s.FXVolume)
	s.SetMusicVolume(s.MusicVolume)
}
