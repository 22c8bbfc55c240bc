package constants

// ConfigDirName is the name of the configuration directory in the user's home directory.
const ConfigDirName = "." + ProjectName

// ConfigFileName is the name of the global configuration file.
const ConfigFileName = "config.yaml"

// ConfigDirPath returns the full path to the global configuration directory.
func ConfigDirPath(homeDir string) string {
	return homeDir + "/" + ConfigDirName
}

// ConfigFilePath returns the full path to the global configuration file.
func ConfigFilePath(homeDir string) string {
	return ConfigDirPath(homeDir) + "/" + ConfigFileName
}

// ConfigDirPermissions is the file system permissions for the config directory (0750).
const ConfigDirPermissions = 0o750

// ConfigFilePermissions is the file system permissions for the config file (0600).
const ConfigFilePermissions = 0o600

// EnvPrefix is the prefix for environment variables that override config file values.
const EnvPrefix = "ARNLINK"
