package config

type Session struct{}

var _ SessionConfig = Session{}

// GetDataFolder returns the folder holding the persisted session store.
// The folder is created on first write if it does not exist.
func (Session) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}
