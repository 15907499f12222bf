// Package main provides the CLI entry point for docforge.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/hiroo3/docforge-go/pkg/docforge"
	"github.com/hiroo3/docforge-go/pkg/docforge/models"
)

var (
	workspace   string
	format      string
	contentPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docforge",
		Short: "Generate documents, spreadsheets, data files, and presentations",
		Long: `docforge renders declarative content into document files:
flow documents (pdf, docx), data formats (json, yaml, xml, csv, xlsx),
and slide decks (pptx).`,
	}
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "workspace", "Output workspace directory")

	generateCmd := &cobra.Command{
		Use:   "generate [filename]",
		Short: "Generate a document or data file",
		Long: `Generate a file from content read from --file or stdin.
For pdf/docx the content is Markdown; for data formats it is a JSON string.`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
	generateCmd.Flags().StringVarP(&format, "format", "f", "", "Target format (default: inferred from filename)")
	generateCmd.Flags().StringVarP(&contentPath, "file", "i", "", "Content file path (default: stdin)")

	deckCmd := &cobra.Command{
		Use:   "deck [filename]",
		Short: "Create a presentation from a slides JSON description",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeck,
	}
	deckCmd.Flags().StringVarP(&contentPath, "file", "i", "", "Slides JSON file path (default: stdin)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation tools over MCP stdio",
		RunE:  runServe,
	}

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range docforge.SupportedFormats() {
				fmt.Println(f)
			}
		},
	}

	rootCmd.AddCommand(generateCmd, deckCmd, serveCmd, formatsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readContent reads the input payload from --file or stdin.
func readContent() (string, error) {
	if contentPath != "" {
		data, err := os.ReadFile(contentPath)
		if err != nil {
			return "", fmt.Errorf("read content: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	content, err := readContent()
	if err != nil {
		return err
	}

	engine := docforge.New(docforge.Options{Workspace: workspace})
	res := engine.Generate(content, args[0], format)
	if res.Failed() {
		return errors.New(res.Error)
	}
	fmt.Println(res.Output)
	return nil
}

func runDeck(cmd *cobra.Command, args []string) error {
	content, err := readContent()
	if err != nil {
		return err
	}

	var slides []models.SlideSpec
	if err := json.Unmarshal([]byte(content), &slides); err != nil {
		return fmt.Errorf("parse slides: %w", err)
	}

	engine := docforge.New(docforge.Options{Workspace: workspace})
	res := engine.CreatePresentation(args[0], slides)
	if res.Failed() {
		return errors.New(res.Error)
	}
	fmt.Println(res.Output)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	engine := docforge.New(docforge.Options{Workspace: workspace})

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "docforge",
		Version: "1.0.0",
	}, nil)
	engine.RegisterMCP(srv)

	return srv.Run(context.Background(), &mcp.StdioTransport{})
}
