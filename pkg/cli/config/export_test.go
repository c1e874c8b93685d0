package config

// LoadTool exposes loadTool for testing
var LoadTool = loadTool

// SetPaths sets the library file paths directly for testing
func (l *Library) SetPaths(paths []string) {
	l.paths = paths
}
