package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/printhaus/go-shop-finance/cmd/setup"
	helperFlag "github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/graceful"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/deliveries/job"
	"github.com/printhaus/go-shop-finance/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to run scheduled finance jobs",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date (YYYY-MM-DD), defaults to today")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// route names only, the services are never called
	j := job.New(config.Config{}, &services.Services{})
	for _, line := range j.List() {
		fmt.Fprintln(ccmd.OutOrStdout(), line)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j := job.New(s.Config, s.Service)
	err = j.Start(ctx, helperFlag.Job{
		JobName: name,
		Version: version,
		Date:    date,
	})
	if err != nil {
		xlog.Error(ctx, "job failed", xlog.String("name", name), xlog.String("version", version), xlog.Err(err))
		graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)
		os.Exit(1)
	}

	xlog.Info(ctx, "job server stopped!")
}
