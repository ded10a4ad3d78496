package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oneviews/prisma"
	_ "github.com/oneviews/prisma/kv/badger"
	_ "github.com/oneviews/prisma/kv/tikv"
)

var (
	projectFile string
	backend     string
	params      map[string]string
	force       bool
	debug       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prisma",
		Short: "document database connector",
	}
	rootCmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "project.yaml", "path to the project yaml descriptor")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "badger", "kv backend (badger|tikv)")
	rootCmd.PersistentFlags().StringToStringVar(&params, "params", nil, "backend parameters ex: storage_path=/tmp/prisma")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "drop every collection belonging to the project (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset destroys all project data; re-run with --force to confirm")
			}
			store, err := openStore(cmd.Context(), prisma.Config{
				Debug:            debug,
				AllowDestructive: true,
			})
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())
			action, err := prisma.ResetData{}.Interpret(prisma.NewActionBuilder(store))
			if err != nil {
				return err
			}
			if _, err := action.Run(cmd.Context()); err != nil {
				return err
			}
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "confirm the destructive reset")
	rootCmd.AddCommand(resetCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg prisma.Config) (*prisma.Store, error) {
	bits, err := os.ReadFile(projectFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}
	project, err := prisma.NewProjectFromYAML(bits)
	if err != nil {
		return nil, err
	}
	p := map[string]any{}
	for k, v := range params {
		p[k] = v
	}
	return prisma.Open(ctx, backend, p, project, cfg)
}
