package spellhtml

import "github.com/mrjoshuak/spellhtml/types"

// Version information for the SpellHTML library.
const (
	Version = types.Version
	Name    = types.Name
)

// SourceText is one extracted fragment of text.
type SourceText = types.SourceText

// Category names the kind of text a SourceText holds, such as
// "htmlcontent" or "xhtmlcomment".
type Category = types.Category

// Mode selects the markup flavor documents are parsed as.
type Mode = types.Mode

// Supported modes.
const (
	ModeHTML  = types.ModeHTML
	ModeXHTML = types.ModeXHTML
	ModeHTML5 = types.ModeHTML5
)

// Options configures a Filter.
type Options = types.Options

// BuildInfo contains version and build information.
type BuildInfo = types.BuildInfo

// Errors returned by filters.
var (
	ErrDocumentLarge   = types.ErrDocumentLarge
	ErrBinaryContent   = types.ErrBinaryContent
	ErrUnknownEncoding = types.ErrUnknownEncoding
)

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return types.DefaultOptions()
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}

// GetBuildInfo returns the current version information.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}
