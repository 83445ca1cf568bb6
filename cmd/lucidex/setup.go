package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// serverName is the key lucidex is registered under in agent configs.
const serverName = "lucidex"

// AgentDef defines how to detect and configure one MCP-capable agent.
type AgentDef struct {
	ID          string
	DisplayName string
	Method      string            // "cli" or "file"
	Binary      string            // for CLI agents: binary name on PATH
	DirMarkers  []string          // for file-based: dirs that indicate presence
	ConfigPath  func() string     // returns resolved config file path
	ServersKey  string            // JSON key: "servers" (VS Code) or "mcpServers" (others)
	NeedsScope  bool              // whether to prompt for project/user scope
	ExtraFields map[string]string // extra JSON fields (e.g. "type": "stdio" for VS Code)
}

// DetectedAgent is an agent found on the system.
type DetectedAgent struct {
	Def            AgentDef
	AlreadySetup   bool
	ResolvedConfig string // resolved config path for file-based agents
}

type setupOptions struct {
	auto bool
	// serveArgs are the arguments registered after the binary name.
	serveArgs []string
}

// Replaceable for testing.
var lookPathFunc = exec.LookPath
var statFunc = os.Stat
var runCommandFunc = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// agentRegistry lists all supported agents in display order.
var agentRegistry = []AgentDef{
	{
		ID: "claude_code", DisplayName: "Claude Code",
		Method: "cli", Binary: "claude", NeedsScope: true,
	},
	{
		ID: "openai_codex", DisplayName: "OpenAI Codex",
		Method: "cli", Binary: "codex", NeedsScope: true,
	},
	{
		ID: "vscode_copilot", DisplayName: "VS Code Copilot",
		Method: "file", DirMarkers: []string{".vscode"},
		ConfigPath:  func() string { return filepath.Join(".vscode", "mcp.json") },
		ServersKey:  "servers",
		ExtraFields: map[string]string{"type": "stdio"},
	},
	{
		ID: "cursor", DisplayName: "Cursor",
		Method: "file", DirMarkers: []string{".cursor"},
		ConfigPath: func() string { return filepath.Join(".cursor", "mcp.json") },
		ServersKey: "mcpServers",
	},
	{
		ID: "claude_desktop", DisplayName: "Claude Desktop",
		Method:     "file",
		ConfigPath: claudeDesktopConfigPath,
		ServersKey: "mcpServers",
	},
}

func newSetupCmd(app *appContext) *cobra.Command {
	opts := &setupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register the lucidex MCP server with detected agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.serveArgs = serveArgsFor(app.config)
			executeSetup(cmd.InOrStdin(), cmd.OutOrStdout(), *opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.auto, "auto", false, "Configure every detected agent without prompting")

	return cmd
}

// serveArgsFor carries the project's token directory into the registration
// so agents serve the same tokens the CLI sees.
func serveArgsFor(cfg *ProjectConfig) []string {
	args := []string{"serve"}
	if cfg != nil && cfg.TokensDir != "" {
		args = append(args, "--tokens-dir", cfg.TokensDir)
		if cfg.Watch {
			args = append(args, "--watch")
		}
	}
	return args
}

// claudeDesktopConfigPath returns the OS-specific desktop app config path.
func claudeDesktopConfigPath() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Claude", "claude_desktop_config.json")
	default: // linux
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}
}

// detectAgents scans the system for installed agents.
func detectAgents() []DetectedAgent {
	var detected []DetectedAgent

	for _, def := range agentRegistry {
		switch def.Method {
		case "cli":
			if _, err := lookPathFunc(def.Binary); err == nil {
				detected = append(detected, DetectedAgent{
					Def:          def,
					AlreadySetup: isConfigured(".mcp.json", "mcpServers"),
				})
			}

		case "file":
			found := false
			configPath := ""

			for _, marker := range def.DirMarkers {
				if _, err := statFunc(marker); err == nil {
					found = true
					if def.ConfigPath != nil {
						configPath = def.ConfigPath()
					}
					break
				}
			}

			// Agents without dir markers count as present when their config
			// directory exists.
			if !found && len(def.DirMarkers) == 0 && def.ConfigPath != nil {
				configPath = def.ConfigPath()
				if _, err := statFunc(filepath.Dir(configPath)); err == nil {
					found = true
				}
			}

			if found {
				d := DetectedAgent{Def: def, ResolvedConfig: configPath}
				if configPath != "" {
					d.AlreadySetup = isConfigured(configPath, def.ServersKey)
				}
				detected = append(detected, d)
			}
		}
	}

	return detected
}

// isConfigured reports whether the JSON file at path already has a lucidex
// entry under serversKey.
func isConfigured(path, serversKey string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return false
	}
	servers, ok := config[serversKey].(map[string]any)
	if !ok {
		return false
	}
	_, exists := servers[serverName]
	return exists
}

// serverEntry is the MCP server config object for lucidex.
func serverEntry(serveArgs []string, extra map[string]string) map[string]any {
	args := make([]any, len(serveArgs))
	for i, a := range serveArgs {
		args[i] = a
	}
	entry := map[string]any{
		"command": serverName,
		"args":    args,
	}
	for k, v := range extra {
		entry[k] = v
	}
	return entry
}

// mergeServerEntry adds a lucidex entry under serversKey of the existing
// JSON document (or a new one), keeping the key order of everything already
// there. Returns nil, nil when lucidex is already configured.
func mergeServerEntry(existing []byte, serversKey string, serveArgs []string, extra map[string]string) ([]byte, error) {
	config := orderedmap.New[string, json.RawMessage]()
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, config); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	servers := orderedmap.New[string, json.RawMessage]()
	if raw, ok := config.Get(serversKey); ok {
		if err := json.Unmarshal(raw, servers); err != nil {
			return nil, fmt.Errorf("invalid JSON under %q: %w", serversKey, err)
		}
	}
	if _, exists := servers.Get(serverName); exists {
		return nil, nil
	}

	entry, err := json.Marshal(serverEntry(serveArgs, extra))
	if err != nil {
		return nil, err
	}
	servers.Set(serverName, entry)

	rawServers, err := json.Marshal(servers)
	if err != nil {
		return nil, err
	}
	config.Set(serversKey, rawServers)

	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// configureCLIAgent runs `<binary> mcp add` with the chosen scope.
func configureCLIAgent(def AgentDef, scope string, serveArgs []string) error {
	args := []string{"mcp", "add"}
	if scope != "" {
		args = append(args, "--scope", scope)
	}
	args = append(args, serverName, "--", serverName)
	args = append(args, serveArgs...)
	return runCommandFunc(def.Binary, args...)
}

// configureFileAgent reads, merges and writes the JSON config file.
func configureFileAgent(def AgentDef, configPath string, serveArgs []string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	var existing []byte
	if data, err := os.ReadFile(configPath); err == nil {
		existing = data
	}

	merged, err := mergeServerEntry(existing, def.ServersKey, serveArgs, def.ExtraFields)
	if err != nil {
		return err
	}
	if merged == nil {
		return nil
	}
	return os.WriteFile(configPath, merged, 0644)
}

// --- prompts ---

// promptYesNo prints a question and reads Y/n. Empty input and EOF mean yes.
func promptYesNo(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s ", question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return true
	}
	answer := strings.TrimSpace(strings.ToLower(line))
	return answer == "" || answer == "y" || answer == "yes"
}

// promptScope reads 1/2/3 and returns "project", "user" or "" (skip).
func promptScope(r *bufio.Reader, w io.Writer, agentName string) string {
	fmt.Fprintf(w, "\n%s: add the lucidex MCP server?\n", agentName)
	fmt.Fprintln(w, "  [1] Project scope (shared with team)")
	fmt.Fprintln(w, "  [2] User scope (personal, global)")
	fmt.Fprintln(w, "  [3] Skip")
	fmt.Fprintf(w, "  > ")

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "project"
	}
	switch strings.TrimSpace(line) {
	case "1", "":
		return "project"
	case "2":
		return "user"
	default:
		return ""
	}
}

// --- orchestration ---

// executeSetup is the testable core of `lucidex setup`. One buffered reader
// is shared by every prompt so answers typed ahead are not lost.
func executeSetup(in io.Reader, w io.Writer, opts setupOptions) {
	if len(opts.serveArgs) == 0 {
		opts.serveArgs = []string{"serve"}
	}
	r := bufio.NewReader(in)

	detected := detectAgents()
	if len(detected) == 0 {
		fmt.Fprintln(w, "No supported AI agents detected.")
		return
	}

	fmt.Fprintln(w, headerStyle.Render("Detected AI agents:"))
	for _, d := range detected {
		if d.AlreadySetup {
			fmt.Fprintf(w, "  * %s %s\n", d.Def.DisplayName, mutedStyle.Render("(already configured)"))
		} else {
			fmt.Fprintf(w, "  * %s\n", d.Def.DisplayName)
		}
	}
	fmt.Fprintln(w)

	if !opts.auto && !promptYesNo(r, w, "Configure agents? [Y/n]") {
		return
	}

	for _, d := range detected {
		if d.AlreadySetup {
			fmt.Fprintf(w, "\n%s: already configured, skipping\n", d.Def.DisplayName)
			continue
		}
		configureOneAgent(r, w, d, opts)
	}
}

func configureOneAgent(r *bufio.Reader, w io.Writer, d DetectedAgent, opts setupOptions) {
	switch d.Def.Method {
	case "cli":
		scope := "project"
		if !opts.auto && d.Def.NeedsScope {
			if scope = promptScope(r, w, d.Def.DisplayName); scope == "" {
				fmt.Fprintf(w, "  skipped\n")
				return
			}
		}
		if err := configureCLIAgent(d.Def, scope, opts.serveArgs); err != nil {
			fmt.Fprintf(w, "  ! %s: failed: %v\n", d.Def.DisplayName, err)
			return
		}
		fmt.Fprintf(w, "  + %s configured (scope: %s)\n", d.Def.DisplayName, scope)

	case "file":
		if !opts.auto && !promptYesNo(r, w, fmt.Sprintf("\n%s: add to %s? [Y/n]", d.Def.DisplayName, d.ResolvedConfig)) {
			fmt.Fprintf(w, "  skipped\n")
			return
		}
		if err := configureFileAgent(d.Def, d.ResolvedConfig, opts.serveArgs); err != nil {
			fmt.Fprintf(w, "  ! %s: failed: %v\n", d.Def.DisplayName, err)
			return
		}
		fmt.Fprintf(w, "  + %s configured (%s)\n", d.Def.DisplayName, d.ResolvedConfig)
	}
}
