package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	Mailto    string `json:"mailto,omitempty"     yaml:"mailto,omitempty"`
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	Timeout   string `json:"timeout,omitempty"    yaml:"timeout,omitempty"`
}

// configKeys lists the keys accepted by config set and config unset.
func configKeys(config *Config) map[string]*string {
	return map[string]*string{
		"base_url":   &config.BaseURL,
		"mailto":     &config.Mailto,
		"user_agent": &config.UserAgent,
		"output":     &config.Output,
		"timeout":    &config.Timeout,
	}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/" + ConfigDirName + "/" + ConfigFileName,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration, merged from flags, environment and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := &OutputRenderer[*Config]{RenderTable: renderConfig}

			return renderer.Render(cmd.OutOrStdout(), loadConfig())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of base_url, mailto, user_agent, output or timeout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			err := validateConfigValue(key, value)
			if err != nil {
				return err
			}

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			field, ok := configKeys(config)[key]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			*field = value

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the config file so its default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			field, ok := configKeys(config)[key]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			*field = ""

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Unset", key, "")
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		BaseURL:   viper.GetString("base_url"),
		Mailto:    viper.GetString("mailto"),
		UserAgent: viper.GetString("user_agent"),
		Output:    viper.GetString("output"),
	}

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		config.Timeout = timeout.String()
	}

	return config
}

// loadConfigFile reads the config file alone, so values given through flags or
// CROSSREF_* variables are never written back.
func loadConfigFile() (*Config, error) {
	config := &Config{}

	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	_, err = os.Stat(configFile)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	fileViper := viper.New()
	fileViper.SetConfigFile(configFile)

	err = fileViper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	for key, field := range configKeys(config) {
		*field = fileViper.GetString(key)
	}

	return config, nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case "output":
		switch value {
		case constants.OutputFormatTable, constants.OutputFormatJSON, constants.OutputFormatYAML:
			return nil
		}

		return fmt.Errorf("%w: output must be table, json or yaml", ErrOutOfRange)
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}

		if timeout <= 0 {
			return fmt.Errorf("%w: timeout must be positive", ErrOutOfRange)
		}
	case "base_url":
		if value == "" {
			return fmt.Errorf("%w: base_url must not be empty", ErrOutOfRange)
		}
	}

	return nil
}

// configFilePath returns the file in use, creating the default directory
// when no file was loaded.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func renderConfig(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("Base URL", orNotAvailable(config.BaseURL))
	_ = table.Append("Mailto", orNotAvailable(config.Mailto))
	_ = table.Append("User Agent", orNotAvailable(config.UserAgent))
	_ = table.Append("Output", orNotAvailable(config.Output))
	_ = table.Append("Timeout", orNotAvailable(config.Timeout))
	_ = table.Append("Polite Pool", politeStatus(config.Mailto))

	return renderTable(table)
}

func politeStatus(mailto string) string {
	if mailto == "" {
		return "no (set mailto to join)"
	}

	return "yes"
}

func outputConfigUpdateResult(w io.Writer, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	renderer := &OutputRenderer[map[string]string]{
		RenderTable: func(w io.Writer, _ map[string]string) error {
			if value == "" {
				_, _ = fmt.Fprintf(w, "%s %s\n", action, key)

				return nil
			}

			_, _ = fmt.Fprintf(w, "%s %s = %s\n", action, key, value)

			return nil
		},
	}

	return renderer.Render(w, result)
}
