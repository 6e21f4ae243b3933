// Package testutil builds throwaway dotfiles repositories for tests.
//
// A Fixture owns two temporary directories, the repository root and a
// fake home, and points HOME, the dotdoctor config directory and the XDG
// state directory inside them so a test never reads the user's files:
//
//	fx := testutil.NewFixture(t)
//	fx.WriteFile("packages.conf", "git\n")
//	fx.WriteFile("git/.gitconfig", "[user]\n")
//	fx.MkdirHome(".ssh", 0755)
//
// Files are written with require, so a failing setup stops the test.
package testutil
