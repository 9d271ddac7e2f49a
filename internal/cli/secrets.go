package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/file-translator/file-translator/internal/db"
	"github.com/file-translator/file-translator/internal/secrets"
)

func newSecretsCommand(v *viper.Viper, flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Manage the API key in the settings database",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [key]",
		Short: "Store the API key (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readKey(cmd, args)
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(v, flags)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Save(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (%s) in %s\n", secrets.KeyName, secrets.Mask(key), store.Location())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the API key from the settings database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(v, flags)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", secrets.KeyName, store.Location())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show where the API key is found, masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, flags)
			if err != nil {
				return err
			}
			provider, database, err := secretsProvider(cfg)
			if err != nil {
				return err
			}
			if database != nil {
				defer database.Close()
			}
			key, err := provider.APIKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", secrets.KeyName, secrets.Mask(key))
			return nil
		},
	})
	return cmd
}

func openStore(v *viper.Viper, flags *Flags) (*secrets.StoreProvider, func(), error) {
	cfg, err := loadConfig(v, flags)
	if err != nil {
		return nil, nil, err
	}
	if cfg.SecretsBackend != "sqlite" {
		return nil, nil, fmt.Errorf("the %s secrets backend reads the key from %s; edit that file or rerun with --secrets-backend sqlite", cfg.SecretsBackend, cfg.SecretsPath)
	}
	database, err := db.NewSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open settings database: %w", err)
	}
	return secrets.NewStoreProvider(database, cfg.DBPath), func() { database.Close() }, nil
}

func readKey(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "API key: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("no API key given")
	}
	return strings.TrimSpace(line), nil
}
