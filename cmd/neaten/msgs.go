package neaten

// Command descriptions
const (
	MsgRootShort = "Remove build output and scratch files by name or extension"
	MsgRootLong  = `neaten removes folders whose name, or files whose extension, exactly
matches one of a list of patterns, anywhere below a destination directory.

A single rule comes from flags:

  neaten --destination ~/code --kind folder --patterns node_modules,bin,obj

Several rules come from a JSON rule file:

  neaten --config rules.json

  [
    {"destination": "~/code", "kind": "folder", "patterns": ["bin", "obj"]},
    {"destination": "/tmp/scratch", "kind": "file", "patterns": ["tmp"], "dryRun": true}
  ]

Matching is exact and case-sensitive. A matched folder is removed with
everything in it. Symlinks are never matched and never followed. Use
--dry-run to see what would be removed first.

Run 'neaten help topics' for the rule file format, matching and more.`

	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Print the effective settings"
	MsgConfigLong      = "Print the settings neaten runs with, after merging defaults, the settings file, NEATEN_* environment variables and flags."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgTopicsShort     = "List the help topics"
)

// Flag descriptions
const (
	MsgFlagConfig      = "JSON rule file holding an array of rules"
	MsgFlagDestination = "directory to clean"
	MsgFlagKind        = "what patterns match: folder (directory names) or file (file extensions)"
	MsgFlagPatterns    = "comma separated names or extensions to remove"
	MsgFlagDryRun      = "report what would be removed without removing anything"
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat      = "output format: auto, term, text or json"
	MsgFlagDefaults    = "print the built-in defaults instead"
)

// Error messages
const (
	MsgErrNoInput     = "please provide --destination, --kind and --patterns, or --config"
	MsgErrExclusive   = "--config cannot be combined with --destination, --kind or --patterns"
	MsgErrUnknownArgs = "unexpected arguments: %v"
	MsgErrShell       = "unsupported shell %q, expected bash, zsh, fish or powershell"
	MsgErrorPrefix    = "Error:"
)
