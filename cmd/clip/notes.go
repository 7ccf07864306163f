package main

import (
	"context"
	"fmt"
	"strings"

	"lightnote/internal/adapters/client/api"
	"lightnote/internal/config"

	"github.com/spf13/cobra"
)

var notesLimit int

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List recent notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadClip()
		if err != nil {
			fatal("Failed to load config", err)
		}

		client := api.NewClient(*cfg)

		notes, err := client.ListNotes(context.Background())
		if err != nil {
			fatal("list failed", err)
		}

		if notesLimit > 0 && len(notes) > notesLimit {
			notes = notes[:notesLimit]
		}

		for _, n := range notes {
			excerpt := n.Content
			if runes := []rune(excerpt); len(runes) > 60 {
				excerpt = string(runes[:60]) + "..."
			}
			tagNames := make([]string, 0, len(n.Tags))
			for _, t := range n.Tags {
				tagNames = append(tagNames, t.Name)
			}
			fmt.Printf("%s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), excerpt)
			if len(tagNames) > 0 {
				fmt.Printf("    [%s]\n", strings.Join(tagNames, ", "))
			}
			fmt.Printf("    %s\n", n.SourceURL)
		}
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.Flags().IntVarP(&notesLimit, "limit", "n", 10, "Maximum number of notes to show")
}
