package strfind

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Find files whose content contains a string"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"
	MsgConfigShort     = "Print the effective configuration"

	// Flag descriptions
	MsgFlagDirectory  = "Directory to search (default: the current directory)"
	MsgFlagFilename   = "Glob for file names, case-insensitive (default \"*\")"
	MsgFlagSearch     = "String or expression to look for (required)"
	MsgFlagIgnoreCase = "Ignore case when matching content"
	MsgFlagRegex      = "Treat the search string as a regular expression"
	MsgFlagOutput     = "How matches are printed: path, name or full (default \"path\")"
	MsgFlagExclude    = "Directory names to skip, comma or space separated; repeatable"
	MsgFlagStrict     = "Fail on an unknown output mode instead of falling back to path"
	MsgFlagQuiet      = "Print only matching files"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagConfig     = "Configuration file to load after the user and project files"
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDefaults   = "Print the built-in defaults instead"

	// Status messages
	MsgOutputFallback = "unknown output mode '%s', using path"
	MsgManWritten     = "Man pages written to %s\n"
	MsgConfigSources  = "# merged from: %s\n"
	MsgConfigNoFiles  = "# no configuration files found, showing defaults\n"

	// Error messages
	MsgErrLoadStyles = "failed to load styles: %w"
	MsgErrManDir     = "failed to create man page directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
