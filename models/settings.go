package models

// Settings is the plugin's persisted configuration blob. It is stored as a
// single opaque JSON object; unknown keys written by other versions are
// dropped on the next save.
type Settings struct {
	// DisplayName is the UI title.
	DisplayName string `json:"displayName"`

	// DataFolder is the vault-relative root for page documents and the
	// pages index.
	DataFolder string `json:"dataFolder"`

	// ImageFolder is the vault-relative root for uploaded images and the
	// markdown image index.
	ImageFolder string `json:"imageFolder"`

	// AutoBackup, BackupInterval (days) and MaxBackups are declared for
	// compatibility with the original settings blob but consumed by no
	// operation. Dead configuration, kept so round-tripping a settings
	// file does not lose them.
	AutoBackup     bool `json:"autoBackup"`
	BackupInterval int  `json:"backupInterval"`
	MaxBackups     int  `json:"maxBackups"`
}

// DefaultSettings returns the settings used when no blob has been saved yet.
// Saved settings are overlaid field-by-field on top of these.
func DefaultSettings() Settings {
	return Settings{
		DisplayName:    "Character Creator",
		DataFolder:     "character-creator",
		ImageFolder:    "character-creator/character-images",
		AutoBackup:     true,
		BackupInterval: 7,
		MaxBackups:     10,
	}
}
