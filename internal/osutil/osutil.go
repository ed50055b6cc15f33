package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

const FilePermission = 0o644
