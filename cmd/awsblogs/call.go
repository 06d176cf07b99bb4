package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/soochol/awsblogs/internal/tools"
)

func newCallCmd(configPath *string) *cobra.Command {
	var textOut bool

	cmd := &cobra.Command{
		Use:   "call <tool> [json-args]",
		Short: "Run one tool locally and print its result",
		Example: `  awsblogs call search_blog_posts '{"query":"lambda","limit":5}'
  awsblogs call read_blog_post '{"url":"https://aws.amazon.com/blogs/aws/some-post/"}' --text`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{}
			if len(args) == 2 && strings.TrimSpace(args[1]) != "" {
				dec := json.NewDecoder(strings.NewReader(args[1]))
				dec.UseNumber()
				if err := dec.Decode(&input); err != nil {
					return fmt.Errorf("parsing arguments: %w", err)
				}
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.registry.Execute(background(cmd), args[0], input)
			if err != nil {
				return err
			}
			return printResult(cmd, result, textOut)
		},
	}
	cmd.Flags().BoolVar(&textOut, "text", false, "print the plain-text rendering when the tool has one")
	return cmd
}

func printResult(cmd *cobra.Command, result any, text bool) error {
	out := cmd.OutOrStdout()
	if tr, ok := result.(tools.TextResult); ok && text {
		_, err := fmt.Fprintln(out, tr.Text())
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func newCategoriesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known blog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.registry.Execute(background(cmd), "list_blog_categories", nil)
			if err != nil {
				return err
			}
			cats, ok := result.(*tools.CategoriesResult)
			if !ok {
				return printResult(cmd, result, false)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFEED")
			for _, c := range cats.Categories {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.FeedURL)
			}
			return w.Flush()
		},
	}
}
