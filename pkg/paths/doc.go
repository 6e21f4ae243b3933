// Package paths provides centralized path handling for dotdoctor.
//
// It resolves the dotfiles root, exposes the XDG directories dotdoctor
// reads its user configuration from and writes its log to, and offers the
// small helpers every check needs to turn configured paths into absolute
// ones and back into the ~ form shown in reports.
//
// # Environment Variables
//
//   - DOTFILES_ROOT: dotfiles repository location (default: git root, then cwd)
//   - DOTDOCTOR_CONFIG_DIR: override the XDG config directory
//     (default: $XDG_CONFIG_HOME/dotdoctor)
//
// # Usage
//
//	p, err := paths.New("")  // Auto-detect dotfiles root
//	if err != nil {
//	    return err
//	}
//
//	root := p.DotfilesRoot()               // /home/user/dotfiles
//	pkgDir := p.PackagePath("nvim")        // /home/user/dotfiles/nvim
//	manifest := p.Resolve("packages.conf") // /home/user/dotfiles/packages.conf
package paths
