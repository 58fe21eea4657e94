package cmdshared

import "strings"

// GetRawForgeVersion strips the Minecraft version from a Forge version in mcVersion-forgeVersion format
func GetRawForgeVersion(version string) string {
	var wantedVersion string
	// Check if we have a "-" in the version
	if strings.Contains(version, "-") {
		// We have a mcVersion-loaderVersion format
		// Strip the mcVersion
		wantedVersion = strings.SplitN(version, "-", 2)[1]
	} else {
		wantedVersion = version
	}
	return wantedVersion
}
