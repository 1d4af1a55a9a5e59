package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so adding a flag only requires
// appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "mode")
	Short     string   // short flag without "-" (e.g., "q")
	Help      string   // description text
	Values    []string // suggested values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number")
	IsFile    bool     // true if the flag takes a file path
	IsMode    bool     // true if values come from the mode list
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Number of terms to iterate", Values: []string{"10", "92", "100", "1000000"}, ValueName: "number"},
	{Long: "mode", Help: "Execution mode", IsMode: true, ValueName: "mode"},
	{Long: "timeout", Help: "Maximum time to wait for a result", Values: []string{"1s", "10s", "1m", "5m"}, ValueName: "duration"},
	{Long: "quiet", Short: "q", Help: "Print only the value"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "config", Help: "Config file path", IsFile: true, ValueName: "file"},
	{Long: "tui", Help: "Start the interactive dashboard"},
	{Long: "metrics-addr", Help: "Prometheus metrics address", Values: []string{":9090"}, ValueName: "addr"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "off"}, ValueName: "level"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "none"}, ValueName: "theme"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell. modes are the
// values offered for --mode.
func GenerateCompletion(out io.Writer, shell string, modes []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, modes)
	case "zsh":
		return generateZshCompletion(out, modes)
	case "fish":
		return generateFishCompletion(out, modes)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagValues returns the completion candidates of f.
func flagValues(f FlagCompletion, modes []string) []string {
	if f.IsMode {
		return modes
	}
	return f.Values
}

// flagNames returns "--long" and "-short" forms, long first.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func generateBashCompletion(out io.Writer, modes []string) error {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"))
		case len(flagValues(f, modes)) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"), strings.Join(flagValues(f, modes), " "))
		}
	}

	_, err := fmt.Fprintf(out, `# bash completion for fibmodes
# Add to ~/.bashrc: eval "$(fibmodes --completion bash)"

_fibmodes() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}

complete -F _fibmodes fibmodes
`, strings.Join(opts, " "), cases.String())
	return err
}

func zshArgEntry(f FlagCompletion, modes []string) string {
	var spec string
	switch {
	case f.IsFile:
		spec = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(flagValues(f, modes)) > 0:
		spec = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(flagValues(f, modes), " "))
	}
	names := flagNames(f)
	if len(names) == 2 {
		return fmt.Sprintf("    '(%s)'{%s}'[%s]%s' \\\n", strings.Join(names, " "), strings.Join(names, ","), f.Help, spec)
	}
	return fmt.Sprintf("    '%s[%s]%s' \\\n", names[0], f.Help, spec)
}

func generateZshCompletion(out io.Writer, modes []string) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		args.WriteString(zshArgEntry(f, modes))
	}
	_, err := fmt.Fprintf(out, `#compdef fibmodes
# zsh completion for fibmodes
# Add to ~/.zshrc: eval "$(fibmodes --completion zsh)"

_fibmodes() {
    _arguments -s \
%s    && return 0
}

compdef _fibmodes fibmodes
`, args.String())
	return err
}

func generateFishCompletion(out io.Writer, modes []string) error {
	var b strings.Builder
	b.WriteString("# fish completion for fibmodes\n# Save to ~/.config/fish/completions/fibmodes.fish\n\n")
	for _, f := range flagRegistry {
		b.WriteString("complete -c fibmodes")
		if f.Long != "" {
			fmt.Fprintf(&b, " -l %s", f.Long)
		}
		if f.Short != "" {
			fmt.Fprintf(&b, " -s %s", f.Short)
		}
		switch {
		case f.IsFile:
			b.WriteString(" -r -F")
		case len(flagValues(f, modes)) > 0:
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(flagValues(f, modes), " "))
		}
		fmt.Fprintf(&b, " -d '%s'\n", f.Help)
	}
	_, err := io.WriteString(out, b.String())
	return err
}
