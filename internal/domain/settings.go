package domain

// Named role settings stored per guild.
const (
	SettingSplitAdmin   = "Split-admin rights"
	SettingContentAdmin = "Content Admin rights"
)

// RoleSettingNames lists the configurable settings for slash-command choices.
var RoleSettingNames = []string{SettingSplitAdmin, SettingContentAdmin}
