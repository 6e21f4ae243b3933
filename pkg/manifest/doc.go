// Package manifest parses the two declarative manifests of a dotfiles
// repository.
//
// The package manifest lists one package per line, optionally with a
// target override:
//
//	# name[:target]
//	git
//	ssh:~/.ssh-config-root
//	nvim:$XDG_CONFIG_HOME/nvim
//
// The version manifest uses shell-env syntax and declares minimum tool
// versions:
//
//	NODE_VERSION=v24.1.0
//	export GO_VERSION="1.24"
//
// Both formats skip blank lines and # comments, expand variable references
// against an explicit lookup, and let a later line for the same key
// overwrite an earlier one. Malformed lines are skipped with a warning.
package manifest
