// Package ruleset builds validated RuleSets.
//
// Rules come either from direct input (one destination, kind and pattern
// list, as given on the command line) or from a JSON rule file holding an
// array of rule objects:
//
//	[
//	  {"destination": "~/code", "kind": "folder", "patterns": ["node_modules", "bin", "obj"]},
//	  {"destination": "/tmp/scratch", "kind": "file", "patterns": ["tmp", "log"], "dryRun": true}
//	]
//
// All validation happens here, before anything is removed. The first
// failure wins and is returned as a single coded error; no partial RuleSet
// is ever produced. Loading reads the rule file and stats destinations but
// never modifies the filesystem.
//
// The optional "exclude" field of a rule object is accepted and kept on the
// Rule but nothing consults it.
package ruleset
