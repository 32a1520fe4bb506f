package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/concilia/pkg/config"
	"github.com/yurifrl/concilia/pkg/plan"
	"github.com/yurifrl/concilia/pkg/reconcile"
	"github.com/yurifrl/concilia/pkg/service"
)

// Set at build time via ldflags.
var version = "dev"

var (
	cfgFile   string
	bancoPath string
	erpPath   string
)

var rootCmd = &cobra.Command{
	Use:   "concilia",
	Short: "Reconcile bank statements against Conexa ERP payments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var runCmd = &cobra.Command{
	Use:   "run --banco <file> --erp <file> [--saida <file>]",
	Short: "Reconcile one bank file against one ERP file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger := newLogger(cfg.Verbose)
		processor := service.NewProcessor(cfg, logger)

		report, err := processor.Run(bancoPath, erpPath, cfg.Saida)
		if err != nil {
			return err
		}

		printSummary(report, cfg.Saida)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Run every reconciliation job listed in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan %s\n", args[0])
		p.Print()

		logger := newLogger(cfg.Verbose)
		processor := service.NewProcessor(cfg, logger)

		for _, job := range p.Jobs {
			report, err := processor.Run(job.Banco, job.Erp, job.Saida)
			if err != nil {
				return err
			}
			printSummary(report, job.Saida)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the concilia version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("concilia " + version)
	},
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "concilia",
		Level:           level,
	})
}

var (
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	unmatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	neutralStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

func printSummary(report *reconcile.Report, saida string) {
	fmt.Println(matchedStyle.Render(fmt.Sprintf("  conciliado        %d", report.Matched)))
	fmt.Println(unmatchedStyle.Render(fmt.Sprintf("  não conciliado    %d", report.Unmatched)))
	fmt.Println(neutralStyle.Render(fmt.Sprintf("  entrada no banco  %d", report.Inflows)))
	fmt.Println(neutralStyle.Render(fmt.Sprintf("  zero ou inválido  %d", report.Invalid)))

	abs, err := filepath.Abs(saida)
	if err != nil {
		abs = saida
	}
	fmt.Printf("\nConciliação gerada em: %s\n", abs)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	runCmd.Flags().StringVar(&bancoPath, "banco", "", "Bank statement file (columns: Data, Valor, optional Tipo, Protocolo)")
	runCmd.Flags().StringVar(&erpPath, "erp", "", "Conexa ERP file (columns: Quitação, Valor, optional Fornecedor)")
	runCmd.Flags().String("saida", "", "Output file (default conciliacao_saida.xlsx)")
	_ = runCmd.MarkFlagRequired("banco")
	_ = runCmd.MarkFlagRequired("erp")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
