package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fchant/daybrain/internal/app"
	"github.com/fchant/daybrain/internal/storage"
	"github.com/fchant/daybrain/internal/store"
	"github.com/fchant/daybrain/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "daybrain",
		Short: "An ADHD-friendly terminal planner",
		Long: `daybrain is a task planner for brains that need one.

Tasks with subtasks and dependencies, projects, categories, daily
time blocks, recurring templates, and a "what now" suggestion engine.
Run without arguments to start the TUI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.AddCommand(addCmd(), exportCmd(), importCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI() error {
	application, err := app.New(nil)
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.StartScheduler(); err != nil {
		return err
	}

	p := tea.NewProgram(
		ui.NewRootModel(application.Store),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

// openStore opens the database without the instance lock; one-shot commands
// only need a single write.
func openStore() (*store.Store, *storage.KV, error) {
	kv, err := storage.Open(storage.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store.New(storage.NewAdapter(kv)), kv, nil
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Quick-add a task",
		Long: `Quick-add a task using inline shorthand:

  daybrain add "Buy milk !tomorrow !high"

  !today !tomorrow   due date
  !<N>d              due in N days
  !high !low         priority`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, kv, err := openStore()
			if err != nil {
				return err
			}
			defer kv.Close()

			task, err := s.QuickAdd(strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Printf("Created: %s\n", task.Title)
			if task.DueDate != nil {
				fmt.Printf("Due: %s\n", task.DueDate.Format("2006-01-02"))
			}
			if task.Priority != "" {
				fmt.Printf("Priority: %s\n", task.Priority)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := storage.Open(storage.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer kv.Close()

			data, err := storage.NewAdapter(kv).ExportData(time.Now())
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported JSON document",
		Long: `Import collections from an export document. Partial documents are
allowed: only the collections present in the file are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read import document: %w", err)
			}

			kv, err := storage.Open(storage.DefaultDBPath())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer kv.Close()

			if err := storage.NewAdapter(kv).ImportData(data); err != nil {
				return err
			}
			fmt.Println("Import complete")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("daybrain v%s\n", version)
		},
	}
}
