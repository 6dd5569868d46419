// ABOUTME: Static table of tracked signals and the flat snapshot record built from them
// ABOUTME: Lets callers enumerate signals, read one by name, or collect all of them at once

package settings

// Signal describes one tracked setting and the accessor that reads it.
type Signal struct {
	Name        string
	Namespace   Namespace
	Key         Key
	MinAPILevel int // 0 when available on every platform version

	read func(DataSource) string
}

// Read returns the signal's value from ds. A Signal not obtained from the
// table has no accessor and reads as "".
func (sig Signal) Read(ds DataSource) string {
	if sig.read == nil || ds == nil {
		return ""
	}
	return sig.read(ds)
}

var signals = []Signal{
	{Name: "adb_enabled", Namespace: Global, Key: KeyADBEnabled, read: DataSource.ADBEnabled},
	{Name: "development_settings_enabled", Namespace: Global, Key: KeyDevelopmentSettingsEnabled, read: DataSource.DevelopmentSettingsEnabled},
	{Name: "http_proxy", Namespace: Global, Key: KeyHTTPProxy, read: DataSource.HTTPProxy},
	{Name: "transition_animation_scale", Namespace: Global, Key: KeyTransitionAnimationScale, read: DataSource.TransitionAnimationScale},
	{Name: "window_animation_scale", Namespace: Global, Key: KeyWindowAnimationScale, read: DataSource.WindowAnimationScale},
	{Name: "data_roaming_enabled", Namespace: Global, Key: KeyDataRoaming, read: DataSource.DataRoamingEnabled},

	{Name: "accessibility_enabled", Namespace: Secure, Key: KeyAccessibilityEnabled, read: DataSource.AccessibilityEnabled},
	{Name: "default_input_method", Namespace: Secure, Key: KeyDefaultInputMethod, read: DataSource.DefaultInputMethod},
	{Name: "rtt_calling_mode", Namespace: Secure, Key: KeyRTTCallingMode, MinAPILevel: APILevelP, read: DataSource.RTTCallingMode},
	{Name: "touch_exploration_enabled", Namespace: Secure, Key: KeyTouchExplorationEnabled, read: DataSource.TouchExplorationEnabled},

	{Name: "alarm_alert_path", Namespace: System, Key: KeyAlarmAlert, read: DataSource.AlarmAlertPath},
	{Name: "date_format", Namespace: System, Key: KeyDateFormat, read: DataSource.DateFormat},
	{Name: "end_button_behaviour", Namespace: System, Key: KeyEndButtonBehavior, read: DataSource.EndButtonBehaviour},
	{Name: "font_scale", Namespace: System, Key: KeyFontScale, read: DataSource.FontScale},
	{Name: "screen_off_timeout", Namespace: System, Key: KeyScreenOffTimeout, read: DataSource.ScreenOffTimeout},
	{Name: "text_auto_replace_enable", Namespace: System, Key: KeyTextAutoReplace, read: DataSource.TextAutoReplaceEnable},
	{Name: "text_auto_punctuate", Namespace: System, Key: KeyTextAutoPunctuate, read: DataSource.TextAutoPunctuate},
	{Name: "time_12_or_24", Namespace: System, Key: KeyTime12Or24, read: DataSource.Time12Or24},
}

// Signals returns the tracked signals in a fixed order.
func Signals() []Signal {
	out := make([]Signal, len(signals))
	copy(out, signals)
	return out
}

// Lookup finds a signal by name.
func Lookup(name string) (Signal, bool) {
	for _, sig := range signals {
		if sig.Name == name {
			return sig, true
		}
	}
	return Signal{}, false
}

// Get reads a single signal by name. ok is false only when name is unknown.
func Get(ds DataSource, name string) (value string, ok bool) {
	sig, ok := Lookup(name)
	if !ok {
		return "", false
	}
	return sig.Read(ds), true
}

// Snapshot is a flat record of every tracked signal.
type Snapshot struct {
	ADBEnabled                 string `json:"adb_enabled" yaml:"adb_enabled"`
	DevelopmentSettingsEnabled string `json:"development_settings_enabled" yaml:"development_settings_enabled"`
	HTTPProxy                  string `json:"http_proxy" yaml:"http_proxy"`
	TransitionAnimationScale   string `json:"transition_animation_scale" yaml:"transition_animation_scale"`
	WindowAnimationScale       string `json:"window_animation_scale" yaml:"window_animation_scale"`
	DataRoamingEnabled         string `json:"data_roaming_enabled" yaml:"data_roaming_enabled"`

	AccessibilityEnabled    string `json:"accessibility_enabled" yaml:"accessibility_enabled"`
	DefaultInputMethod      string `json:"default_input_method" yaml:"default_input_method"`
	RTTCallingMode          string `json:"rtt_calling_mode" yaml:"rtt_calling_mode"`
	TouchExplorationEnabled string `json:"touch_exploration_enabled" yaml:"touch_exploration_enabled"`

	AlarmAlertPath        string `json:"alarm_alert_path" yaml:"alarm_alert_path"`
	DateFormat            string `json:"date_format" yaml:"date_format"`
	EndButtonBehaviour    string `json:"end_button_behaviour" yaml:"end_button_behaviour"`
	FontScale             string `json:"font_scale" yaml:"font_scale"`
	ScreenOffTimeout      string `json:"screen_off_timeout" yaml:"screen_off_timeout"`
	TextAutoReplaceEnable string `json:"text_auto_replace_enable" yaml:"text_auto_replace_enable"`
	TextAutoPunctuate     string `json:"text_auto_punctuate" yaml:"text_auto_punctuate"`
	Time12Or24            string `json:"time_12_or_24" yaml:"time_12_or_24"`
}

// Collect reads every signal from ds once.
func Collect(ds DataSource) Snapshot {
	return Snapshot{
		ADBEnabled:                 ds.ADBEnabled(),
		DevelopmentSettingsEnabled: ds.DevelopmentSettingsEnabled(),
		HTTPProxy:                  ds.HTTPProxy(),
		TransitionAnimationScale:   ds.TransitionAnimationScale(),
		WindowAnimationScale:       ds.WindowAnimationScale(),
		DataRoamingEnabled:         ds.DataRoamingEnabled(),
		AccessibilityEnabled:       ds.AccessibilityEnabled(),
		DefaultInputMethod:         ds.DefaultInputMethod(),
		RTTCallingMode:             ds.RTTCallingMode(),
		TouchExplorationEnabled:    ds.TouchExplorationEnabled(),
		AlarmAlertPath:             ds.AlarmAlertPath(),
		DateFormat:                 ds.DateFormat(),
		EndButtonBehaviour:         ds.EndButtonBehaviour(),
		FontScale:                  ds.FontScale(),
		ScreenOffTimeout:           ds.ScreenOffTimeout(),
		TextAutoReplaceEnable:      ds.TextAutoReplaceEnable(),
		TextAutoPunctuate:          ds.TextAutoPunctuate(),
		Time12Or24:                 ds.Time12Or24(),
	}
}

// NamedValue pairs a signal name with its collected value.
type NamedValue struct {
	Name  string
	Value string
}

// Values returns the snapshot's values in signal table order.
func (s Snapshot) Values() []NamedValue {
	return []NamedValue{
		{"adb_enabled", s.ADBEnabled},
		{"development_settings_enabled", s.DevelopmentSettingsEnabled},
		{"http_proxy", s.HTTPProxy},
		{"transition_animation_scale", s.TransitionAnimationScale},
		{"window_animation_scale", s.WindowAnimationScale},
		{"data_roaming_enabled", s.DataRoamingEnabled},
		{"accessibility_enabled", s.AccessibilityEnabled},
		{"default_input_method", s.DefaultInputMethod},
		{"rtt_calling_mode", s.RTTCallingMode},
		{"touch_exploration_enabled", s.TouchExplorationEnabled},
		{"alarm_alert_path", s.AlarmAlertPath},
		{"date_format", s.DateFormat},
		{"end_button_behaviour", s.EndButtonBehaviour},
		{"font_scale", s.FontScale},
		{"screen_off_timeout", s.ScreenOffTimeout},
		{"text_auto_replace_enable", s.TextAutoReplaceEnable},
		{"text_auto_punctuate", s.TextAutoPunctuate},
		{"time_12_or_24", s.Time12Or24},
	}
}
