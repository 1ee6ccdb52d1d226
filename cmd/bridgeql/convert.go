package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	bql "github.com/bridgeql-engine/bridgeql"
)

var (
	convertRules string
	convertMode  string
	convertOut   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert query files, or stdin when no files are given",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertRules, "rules", "", "path to the YAML remapping rule document")
	convertCmd.Flags().StringVar(&convertMode, "mode", "sql", "output mode: sql, pyspark or python")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output directory (default: alongside each input)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv := bql.New(bql.WithRulesFile(convertRules))
	if err := conv.RulesErr(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: rule document unusable, converting without remapping: %v\n", err)
	}

	if len(args) == 0 {
		query, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		out, err := renderMode(conv, string(query), convertMode)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	for _, path := range args {
		if err := convertFile(conv, path); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(conv *bql.Converter, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, err := renderMode(conv, string(content), convertMode)
	if err != nil {
		return err
	}

	dest := outputPath(path, convertMode)
	if err := os.WriteFile(dest, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	fmt.Printf("%s -> %s\n", path, dest)
	return nil
}

func renderMode(conv *bql.Converter, query, mode string) (string, error) {
	switch mode {
	case "sql":
		return conv.Convert(query), nil
	case "pyspark":
		return fmt.Sprintf("df = spark.sql('''%s''')", conv.Convert(query)), nil
	case "python":
		return fmt.Sprintf("df = duckdb.query('''%s''').to_df()", conv.Convert(query)), nil
	default:
		return "", fmt.Errorf("unsupported conversion mode %q", mode)
	}
}

func outputPath(path, mode string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := ".sql"
	if mode != "sql" {
		ext = ".py"
	}
	dir := filepath.Dir(path)
	if convertOut != "" {
		dir = convertOut
	}
	return filepath.Join(dir, base+"_converted"+ext)
}
