package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/prep-roadmap/internal/jobsource"
	"github.com/spigell/prep-roadmap/internal/roadmap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a roadmap for a single job description",
	Example: `  prep-roadmap generate --company Google --role "Software Engineer" --jd-file jd.txt
  curl -s https://example.com/job.txt | prep-roadmap generate --company Uber --role Backend --jd-file -`,
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("company", "", "company name")
	generateCmd.Flags().String("role", "", "job role")
	generateCmd.Flags().String("jd-file", "", "file with the job description, '-' reads stdin")
	generateCmd.Flags().String("jd-url", "", "web page with the job description")
	generateCmd.Flags().Bool("skip-extract", false, "do not analyze the job description, use the default skill set")
	generateCmd.Flags().StringP("out", "o", "", "file name for the roadmap (default is roadmap_<company>_<role>_<timestamp>.json)")

	generateCmd.MarkFlagRequired("company")
	generateCmd.MarkFlagRequired("role")
	generateCmd.MarkFlagsMutuallyExclusive("jd-file", "jd-url")
	generateCmd.MarkFlagsOneRequired("jd-file", "jd-url")
}

func generate(cmd *cobra.Command) {
	ctx := context.Background()
	flags := cmd.Flags()

	skipExtract, _ := flags.GetBool("skip-extract")
	a := newApplication(ctx, !skipExtract)
	a.skipExtract = skipExtract

	company, _ := flags.GetString("company")
	role, _ := flags.GetString("role")
	jdFile, _ := flags.GetString("jd-file")
	jdURL, _ := flags.GetString("jd-url")
	out, _ := flags.GetString("out")

	var (
		description string
		err         error
	)

	if jdURL != "" {
		description, err = jobsource.New(a.logger).Fetch(ctx, jdURL)
	} else {
		description, err = jobsource.FromFile(jdFile, os.Stdin)
	}
	if err != nil {
		a.logger.Fatal("loading job description", zap.Error(err))
	}

	input := roadmap.JobInput{
		CompanyName:    strings.TrimSpace(company),
		Role:           strings.TrimSpace(role),
		JobDescription: description,
	}

	if _, err := a.generate(input, out); err != nil {
		a.logger.Fatal("generating roadmap", zap.Error(err))
	}
}
