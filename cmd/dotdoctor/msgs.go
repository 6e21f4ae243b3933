package dotdoctor

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Check a dotfiles repository for drift"
	MsgCheckShort      = "Run the diagnostic checks and print the report"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "List the help topics"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Dotfiles root (default: $DOTFILES_ROOT, the git toplevel or the current directory)"
	MsgFlagConfig      = "Configuration file used instead of <root>/.dotdoctor.toml"
	MsgFlagOnly        = "Only run these categories (manifest, symlinks, versions, build, permissions, links, lint)"
	MsgFlagFormat      = "Output format: auto, term or text"
	MsgFlagTimeout     = "Per-check timeout, overrides engine.timeout"
	MsgFlagConcurrency = "Checks run at the same time, overrides engine.concurrency"

	// Output
	MsgVersionFormat  = "dotdoctor version %s\ncommit: %s\nbuilt:  %s\n"
	MsgErrorFormat    = "dotdoctor: %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
