/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/docsum-be/config"
	"github.com/tieubaoca/docsum-be/types"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize local documents without starting the server",
	Long: `Runs the extraction and summarization pipeline over files on disk
and prints the result as JSON. Pass --file several times for a combined
structured summary, or --directory to process every supported file in a
directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		files, _ := cmd.Flags().GetStringArray("file")
		directory, _ := cmd.Flags().GetString("directory")
		structured, _ := cmd.Flags().GetBool("structured")
		maxWords, _ := cmd.Flags().GetInt("max-words")

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		if directory != "" {
			entries, err := os.ReadDir(directory)
			if err != nil {
				log.Fatal().Err(err).Str("directory", directory).Msg("failed to read directory")
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if types.IsAllowedExtension(strings.ToLower(filepath.Ext(entry.Name()))) {
					files = append(files, filepath.Join(directory, entry.Name()))
				}
			}
		}
		if len(files) == 0 {
			log.Fatal().Msg("no input files, pass --file or --directory")
		}

		docs := make([]types.Document, 0, len(files))
		for _, path := range files {
			ext := strings.ToLower(filepath.Ext(path))
			if !types.IsAllowedExtension(ext) {
				log.Fatal().Str("file", path).Msg("unsupported file type")
			}
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatal().Err(err).Str("file", path).Msg("failed to read file")
			}
			docs = append(docs, types.Document{
				Name:      filepath.Base(path),
				Data:      data,
				MediaType: types.MediaTypeFor(ext),
			})
		}

		documentService, _ := buildPipeline(cfg)

		opts := types.SummarizeOptions{MaxWords: maxWords}
		if structured {
			opts.Mode = types.ModeStructured
		}

		result, err := documentService.Process(cmd.Context(), docs, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("summarization failed")
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode result")
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringArrayP("file", "f", []string{}, "Path to a file to summarize (repeatable)")
	summarizeCmd.Flags().String("directory", "", "Summarize every supported file in this directory")
	summarizeCmd.Flags().Bool("structured", false, "Force the structured JSON summary")
	summarizeCmd.Flags().Int("max-words", 0, "Word budget embedded in the prompt")
}
