package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/listoapp/listo/internal/backup"
)

// newExportCommand writes all four collections to a backup document.
func newExportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write a backup of tasks, boards, activity, and settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.close()

			path := backup.DefaultFilename(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			if err := backup.WriteFile(path, e.store.Export()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s\n", path)
			return nil
		},
	}
}

// newImportCommand restores collections from a backup document. Only the
// keys present in the document are overwritten.
func newImportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore collections from a backup document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := backup.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("invalid backup file: %w", err)
			}

			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.close()

			e.store.Import(doc)

			fmt.Fprintf(cmd.OutOrStdout(),
				"restored: %d task(s), %d board(s)\n",
				len(e.store.Tasks()), len(e.store.Boards()),
			)
			return nil
		},
	}
}

// newSweepCommand runs a single expiration sweep and exits.
func newSweepCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired tasks and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.close()

			removed := e.store.SweepExpired(time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired task(s)\n", removed)
			return nil
		},
	}
}

// newResetCommand wipes tasks, boards, and activity back to the seed state.
func newResetCommand(configPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks, boards, and activity history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "this deletes everything except settings. type 'yes' to continue: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if strings.TrimSpace(answer) != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}

			e, err := openEnv(*configPath)
			if err != nil {
				return err
			}
			defer e.close()

			e.store.ClearAllData()
			fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
