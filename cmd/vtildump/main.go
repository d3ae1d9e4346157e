package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vtil-go/vtil/pkg/dump"
	"github.com/vtil-go/vtil/pkg/vtilio"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vtildump",
		Short: "Inspect VTIL routine files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			viper.SetConfigFile(configPath)
			return viper.ReadInConfig()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional config file setting a default architecture label")

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a routine's instructions in text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routine, err := vtilio.FromPath(args[0])
			if err != nil {
				return err
			}
			fmt.Print(dump.Routine(routine))
			return nil
		},
	}

	statCmd := &cobra.Command{
		Use:   "stat <file>",
		Short: "Print block and instruction counts for a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routine, err := vtilio.FromPath(args[0])
			if err != nil {
				return err
			}
			defaultArch := viper.GetString("default_arch")
			if defaultArch == "" {
				defaultArch = routine.ArchID.String()
			}

			instrCount := 0
			for _, b := range routine.ExploredBlocks() {
				instrCount += len(b.Instructions)
			}

			fmt.Printf("Architecture: %s (config default: %s)\n", routine.ArchID, defaultArch)
			fmt.Printf("Entry point:  %#x\n", uint64(routine.Vip))
			fmt.Printf("Blocks:       %d\n", routine.BlockCount())
			fmt.Printf("Instructions: %d\n", instrCount)
			return nil
		},
	}

	rootCmd.AddCommand(dumpCmd, statCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
