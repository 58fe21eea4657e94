package core

// PackVersion is the strategy used to pick the version of a file. It is one of
// LatestVersion, SemVerVersion, ExactVersion or DownloadVersion.
type PackVersion interface {
	// VersionType is the value of the type key for this strategy
	VersionType() string
	isPackVersion()
}

// LatestVersion selects the newest version published on a channel
type LatestVersion struct {
	Channel Channel
}

// SemVerVersion selects the newest version matching a semver range
type SemVerVersion struct {
	Version VersionReq
}

// ExactVersion pins a version; the string is not interpreted
type ExactVersion struct {
	Version string
}

// DownloadVersion fetches a file directly, bypassing the pack's sources
type DownloadVersion struct {
	// Sources are download URLs, in order of preference
	Sources []string
	SHA1    *string
}

func (LatestVersion) VersionType() string   { return "latest" }
func (SemVerVersion) VersionType() string   { return "semver" }
func (ExactVersion) VersionType() string    { return "exact" }
func (DownloadVersion) VersionType() string { return "download" }

func (LatestVersion) isPackVersion()   {}
func (SemVerVersion) isPackVersion()   {}
func (ExactVersion) isPackVersion()    {}
func (DownloadVersion) isPackVersion() {}

// Channel is a release channel, ordered by stability
type Channel string

const (
	ChannelRelease Channel = "release"
	ChannelBeta    Channel = "beta"
	ChannelAlpha   Channel = "alpha"
)

// DefaultChannel is the channel of a latest strategy that does not specify one
func DefaultChannel() Channel {
	return ChannelRelease
}

// ParseChannel converts a lowercase token into a Channel
func ParseChannel(s string) (Channel, error) {
	return parseChannel("channel", s)
}

func parseChannel(path, s string) (Channel, error) {
	return parseToken(path, s, ChannelRelease, ChannelBeta, ChannelAlpha)
}

func (c Channel) stability() int {
	switch c {
	case ChannelRelease:
		return 2
	case ChannelBeta:
		return 1
	case ChannelAlpha:
		return 0
	}
	return -1
}

// Includes reports whether a version published on other is acceptable when following c.
// A channel includes itself and every more stable channel.
func (c Channel) Includes(other Channel) bool {
	if c.stability() < 0 || other.stability() < 0 {
		return false
	}
	return other.stability() >= c.stability()
}

var versionDecoders = map[string]tagDecoder[PackVersion]{
	"latest": func(body tableBody) (PackVersion, error) {
		var raw struct {
			Channel *string `mapstructure:"channel"`
		}
		if err := body.decode(&raw); err != nil {
			return nil, err
		}
		if raw.Channel == nil {
			return LatestVersion{Channel: DefaultChannel()}, nil
		}
		channel, err := parseChannel(body.at("channel"), *raw.Channel)
		if err != nil {
			return nil, err
		}
		return LatestVersion{Channel: channel}, nil
	},
	"semver": func(body tableBody) (PackVersion, error) {
		var raw struct {
			Version *string `mapstructure:"version"`
		}
		if err := body.decode(&raw); err != nil {
			return nil, err
		}
		if raw.Version == nil {
			return nil, missingField(body.at("version"))
		}
		req, err := ParseVersionReq(*raw.Version)
		if err != nil {
			if cErr, ok := err.(*ConstraintSyntaxError); ok {
				cErr.Path = body.at("version")
			}
			return nil, err
		}
		return SemVerVersion{Version: req}, nil
	},
	"exact": func(body tableBody) (PackVersion, error) {
		var raw struct {
			Version *string `mapstructure:"version"`
		}
		if err := body.decode(&raw); err != nil {
			return nil, err
		}
		if raw.Version == nil {
			return nil, missingField(body.at("version"))
		}
		return ExactVersion{Version: *raw.Version}, nil
	},
	"download": func(body tableBody) (PackVersion, error) {
		var raw struct {
			Sources *[]string `mapstructure:"sources"`
			SHA1    *string   `mapstructure:"sha1"`
		}
		if err := body.decode(&raw); err != nil {
			return nil, err
		}
		if raw.Sources == nil {
			return nil, missingField(body.at("sources"))
		}
		return DownloadVersion{Sources: *raw.Sources, SHA1: raw.SHA1}, nil
	},
}
