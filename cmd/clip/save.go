package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"lightnote/internal/adapters/client/api"
	"lightnote/internal/config"

	"github.com/spf13/cobra"
)

var (
	saveURL   string
	saveTitle string
	saveTags  []string
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save [text]",
	Short: "Save a selection as a note",
	Long: `Save a piece of text as a note with its source URL.
The text comes from the argument, or from stdin when piped.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := ""
		if len(args) == 1 {
			content = args[0]
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = strings.TrimRight(string(data), "\n")
		}

		cfg, err := config.LoadClip()
		if err != nil {
			fatal("Failed to load config", err)
		}

		client := api.NewClient(*cfg)

		req := api.SaveNoteRequest{
			Content:   content,
			SourceURL: saveURL,
			Tags:      saveTags,
		}
		if saveTitle != "" {
			req.SourceTitle = &saveTitle
		}

		fmt.Fprintln(os.Stderr, "saving to LightNote...")

		saved, err := client.SaveNote(context.Background(), req)
		if err != nil {
			fatal("save failed", err)
		}

		fmt.Printf("saved note %s (%d tags)\n", saved.ID, len(saved.Tags))
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVar(&saveURL, "url", "", "Source URL of the content")
	saveCmd.Flags().StringVar(&saveTitle, "title", "", "Title of the source page")
	saveCmd.Flags().StringArrayVarP(&saveTags, "tag", "t", nil, "Tag to attach (repeatable)")
	saveCmd.MarkFlagRequired("url")
}
