package templater

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Render a template tree by evaluating #if flag directives"

	// Output
	MsgWritten       = "Written"
	MsgWouldWrite    = "Would write"
	MsgSkippedEmpty  = "Skipped (empty)"
	MsgDryRunNotice  = "\nDRY RUN MODE - No files were written"
	MsgUnusedFlags   = "Unused flags:"
	MsgUnusedFlag    = "  - Flag %s was provided but not used in any condition."
	MsgDidYouMean    = " Did you mean %s?"
	MsgUsedFlags     = "Flags used by conditions:"
	MsgDeclaredFlags = "All flags found in template conditions:"

	// Summary table
	MsgSummaryStatus = "Status"
	MsgSummaryFiles  = "Files"

	// Error messages
	MsgErrNoFlags    = "at least one flag is required"
	MsgErrEmptyFlag  = "flag names must not be empty"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRender     = "failed to render %s: %w"
	MsgErrLoadStyles = "failed to load styles: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO and per-file output, -vv DEBUG, -vvv TRACE)"
	MsgFlagFrom        = "Source template directory"
	MsgFlagTo          = "Destination directory"
	MsgFlagDryRun      = "Preview the result without writing files"
	MsgFlagJobs        = "Number of files rendered concurrently"
	MsgFlagConfig      = "Additional configuration file (TOML)"
	MsgFlagPrintConfig = "Print the effective configuration and exit"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
