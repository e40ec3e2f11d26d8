// Command numreport prints descriptive statistics for newline-delimited
// number files.
//
// Usage:
//
//	numreport mean numbers.txt
//	numreport median numbers.txt
//	numreport mode numbers.txt
//	numreport describe numbers.txt
//
// Lines that do not parse as numbers are skipped; pass --strict to fail on
// them instead. Flags can also be set through NUMREPORT_* environment
// variables (e.g. NUMREPORT_LOG_LEVEL=debug).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numreport/numreport"
)

var log = logrus.New()

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numreport",
		Short:         "Descriptive statistics over number files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(viper.GetString("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warning", "log level (debug, info, warning, error)")
	root.PersistentFlags().String("comments", "", "skip lines starting with this prefix")
	root.PersistentFlags().Bool("strict", false, "fail on lines that do not parse as numbers")

	viper.SetEnvPrefix("NUMREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		statCmd("mean", "Print the arithmetic mean", func(r *numreport.Report, cmd *cobra.Command) error {
			v, err := r.Mean(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatFloat(v))
			return nil
		}),
		statCmd("median", "Print the median", func(r *numreport.Report, cmd *cobra.Command) error {
			v, err := r.Median(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatFloat(v))
			return nil
		}),
		statCmd("mode", "Print the mode set, ascending", func(r *numreport.Report, cmd *cobra.Command) error {
			vs, err := r.Mode(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(formatFloats(vs))
			return nil
		}),
		statCmd("describe", "Print all statistics", func(r *numreport.Report, cmd *cobra.Command) error {
			s, err := r.Describe(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("count:  %d\n", s.Count)
			fmt.Printf("mean:   %s\n", formatFloat(s.Mean))
			fmt.Printf("median: %s\n", formatFloat(s.Median))
			fmt.Printf("mode:   %s\n", formatFloats(s.Mode))
			return nil
		}),
		versionCmd(),
	)

	return root
}

// statCmd builds one file-statistic subcommand. Each invocation constructs
// a fresh source and report, so every run reads the file exactly once per
// statistic requested.
func statCmd(name, short string, run func(*numreport.Report, *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []numreport.Option{numreport.WithLogger(log)}
			if prefix := viper.GetString("comments"); prefix != "" {
				opts = append(opts, numreport.WithComments(prefix))
			}
			if viper.GetBool("strict") {
				opts = append(opts, numreport.WithStrictParsing())
			}

			src := numreport.NewFileSource(args[0], opts...)
			return run(numreport.NewReport(src), cmd)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := numreport.GetVersionInfo()
			fmt.Printf("numreport %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
