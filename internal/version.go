package internal

var commitVersion string = "v0.1.0" // May be updated using build flags

func GetVersion() string {
	return commitVersion
}
