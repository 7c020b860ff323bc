package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isobench/pkg/generate"
	gio "github.com/matzehuels/isobench/pkg/io"
	"github.com/matzehuels/isobench/pkg/render"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for isobench.

To load completions:

Bash:
  $ source <(isobench completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ isobench completion bash > /etc/bash_completion.d/isobench
  # macOS:
  $ isobench completion bash > $(brew --prefix)/etc/bash_completion.d/isobench

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ isobench completion zsh > "${fpath[1]}/_isobench"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ isobench completion fish | source

  # To load completions for each session, execute once:
  $ isobench completion fish > ~/.config/fish/completions/isobench.fish

PowerShell:
  PS> isobench completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> isobench completion powershell > isobench.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeKinds completes the --kind flag of generate.
func completeKinds(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	kinds := generate.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the --format flag of render.
func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	formats := render.Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeGraphFiles completes graph arguments with graph6 and JSON files.
// Graph6 strings cannot be completed, so only files and directories are offered.
func completeGraphFiles(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	dir, prefix := filepath.Split(toComplete)
	entries, err := os.ReadDir(dirOrDot(dir))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		switch {
		case e.IsDir():
			out = append(out, dir+name+string(filepath.Separator))
		case strings.HasSuffix(name, gio.Ext), strings.HasSuffix(name, gio.JSONExt):
			out = append(out, dir+name)
		}
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
