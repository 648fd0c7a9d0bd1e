// Package executable locates the external CLIs the publisher shells out to.
package executable

// Tool is an external command-line tool the publisher depends on.
type Tool string

const (
	GitHubCLI Tool = "gh"
	Git       Tool = "git"
)

// InstallHint returns a short instruction for installing the tool.
func InstallHint(tool Tool) string {
	switch tool {
	case GitHubCLI:
		return "Install it from: https://cli.github.com/"
	case Git:
		return "Install it from: https://git-scm.com/downloads"
	default:
		return ""
	}
}

// DisplayName is the human-facing name of the tool.
func DisplayName(tool Tool) string {
	switch tool {
	case GitHubCLI:
		return "GitHub CLI (gh)"
	case Git:
		return "Git"
	default:
		return string(tool)
	}
}
