package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shrike/internal/config"
	"github.com/aidanlsb/shrike/internal/rules"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new vault",
	Long: `Creates a new vault at the specified path with default configuration files.

Creates:
  - rules.yaml  (rulesets)
  - .shrike/    (index directory)
  - .gitignore  (ignores derived files)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fmt.Printf("Initializing vault at: %s\n", path)

		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
		if err := os.MkdirAll(filepath.Join(path, ".shrike"), 0o755); err != nil {
			return fmt.Errorf("failed to create .shrike directory: %w", err)
		}

		rulesPath := filepath.Join(path, rules.FileName)
		createdRules := false
		if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
			if err := rules.CreateDefault(path); err != nil {
				return fmt.Errorf("failed to create rules.yaml: %w", err)
			}
			createdRules = true
		}

		gitignoreStatus, err := ensureGitignore(path)
		if err != nil {
			return err
		}

		vaultName, registered, err := registerVault(path)
		if err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}

		if createdRules {
			fmt.Println("✓ Created rules.yaml (rulesets)")
		} else {
			fmt.Println("• rules.yaml already exists (kept)")
		}
		fmt.Println("✓ Ensured .shrike/ directory exists")
		switch gitignoreStatus {
		case "created":
			fmt.Println("✓ Created .gitignore")
		case "updated":
			fmt.Println("✓ Updated .gitignore (added Shrike entries)")
		default:
			fmt.Println("• .gitignore already has Shrike entries")
		}

		if registered {
			fmt.Printf("✓ Registered vault %q in config\n", vaultName)
			fmt.Printf("\nNext: shk --vault %s check\n", vaultName)
		} else {
			fmt.Printf("• Vault %q already registered in config\n", vaultName)
		}
		return nil
	},
}

// registerVault adds the vault to the global config under its base
// name and makes it the default when none is set. Returns the name and
// whether the config changed.
func registerVault(vaultPath string) (string, bool, error) {
	abs, err := filepath.Abs(vaultPath)
	if err != nil {
		return "", false, err
	}
	name := filepath.Base(abs)

	cfg, err := loadGlobalConfig()
	if err != nil {
		return "", false, err
	}
	if existing, ok := cfg.Vaults[name]; ok {
		if existing == abs {
			return name, false, nil
		}
		// Same base name, different directory: leave the config alone.
		return name, false, nil
	}

	if cfg.Vaults == nil {
		cfg.Vaults = make(map[string]string)
	}
	cfg.Vaults[name] = abs
	if cfg.DefaultVault == "" {
		cfg.DefaultVault = name
	}

	if strings.TrimSpace(configPath) != "" {
		err = config.SaveTo(configPath, cfg)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// ensureGitignore adds the derived-files entry to the vault's
// .gitignore, creating the file when absent. Returns "created",
// "updated", or "kept".
func ensureGitignore(vaultPath string) (string, error) {
	gitignorePath := filepath.Join(vaultPath, ".gitignore")
	entry := ".shrike/"

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	if strings.Contains(existing, entry) {
		return "kept", nil
	}

	status := "updated"
	var content string
	if existing == "" {
		status = "created"
		content = `# Shrike (auto-generated)
# The index is derived state - your markdown is the source of truth
.shrike/
`
	} else {
		content = strings.TrimRight(existing, "\n") + "\n\n# Shrike\n" + entry + "\n"
	}

	if err := os.WriteFile(gitignorePath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return status, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
