package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dinotradez/backend/internal/scheduler"
	"github.com/dinotradez/backend/internal/scheduler/jobs"
)

var scheduledForms []string

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run and inspect the periodic scans",
	Long: `Start the scheduler or manage its jobs.

Subcommands:
  start   - start the scheduler daemon
  list    - list registered jobs with their next run
  run     - run one job immediately and wait for it

Example:
  go run ./cmd/dinotradez scheduler start
  go run ./cmd/dinotradez scheduler list
  go run ./cmd/dinotradez scheduler run darkpool_scan`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler",
		Long: `Start the scheduler and register every job.

Registered jobs (New York time, weekdays):
- darkpool_scan:  every 15 minutes, 9:00-15:45
- lotto_scan:     hourly at :30, 10:30-15:30
- watchlist_scan: 16:15 after the close
- filings_scan:   every 30 minutes, 6:00-21:30

Stop the scheduler with Ctrl+C.`,
		RunE: runScheduler,
	}

	schedulerListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		RunE:  listJobs,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run one job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerListCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)

	schedulerCmd.PersistentFlags().StringSliceVar(&scheduledForms, "forms", []string{"S-3"}, "form types watched by filings_scan")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== DinoTradez Scheduler ===")

	return withApp(cmd, func(ctx context.Context, a *app) error {
		sched, err := newScheduler(a)
		if err != nil {
			return fmt.Errorf("init scheduler: %w", err)
		}

		sched.Start()

		PrintSuccess("Scheduler started successfully")
		fmt.Println("\nRegistered jobs:")
		for _, jobName := range sched.GetAllJobs() {
			fmt.Printf("  - %s (next: %s)\n", jobName, sched.NextRun(jobName).Format("2006-01-02 15:04:05 MST"))
		}
		fmt.Println("\nPress Ctrl+C to stop")

		// Wait for interrupt signal
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		fmt.Println("\nShutting down scheduler...")
		sched.Stop()
		fmt.Print(renderTable([]string{"JOB", "RUNS", "SUCCESS", "FAILED", "LAST RUN"}, statsRows(sched)))
		fmt.Println("Scheduler stopped")
		return nil
	})
}

// statsRows summarizes the runs this process made, one row per job
func statsRows(sched *scheduler.Scheduler) [][]string {
	stats := sched.GetJobStats()
	rows := make([][]string, 0, len(stats))
	for _, name := range sched.GetAllJobs() {
		stat := stats[name]
		lastRun := "-"
		if stat.LastRun != nil {
			lastRun = stat.LastRun.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", stat.TotalRuns),
			fmt.Sprintf("%d (%.1f%%)", stat.SuccessCount, stat.SuccessRate*100),
			fmt.Sprintf("%d", stat.FailureCount),
			lastRun,
		})
	}
	return rows
}

func listJobs(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		sched, err := newScheduler(a)
		if err != nil {
			return fmt.Errorf("init scheduler: %w", err)
		}

		// Entries only get a next time once cron is running
		sched.Start()
		defer sched.Stop()

		rows := make([][]string, 0)
		for _, name := range sched.GetAllJobs() {
			job, _ := sched.GetJob(name)
			rows = append(rows, []string{
				name,
				job.Schedule(),
				sched.NextRun(name).Format("2006-01-02 15:04 MST"),
			})
		}

		PrintTitle("Registered jobs")
		fmt.Print(renderTable([]string{"JOB", "SCHEDULE", "NEXT RUN"}, rows))
		return nil
	})
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	fmt.Printf("Running job: %s\n", jobName)

	return withApp(cmd, func(ctx context.Context, a *app) error {
		sched, err := newScheduler(a)
		if err != nil {
			return fmt.Errorf("init scheduler: %w", err)
		}

		result, err := sched.RunJob(ctx, jobName)
		if err != nil {
			if result.Attempts > 0 {
				return fmt.Errorf("run job (%d attempts): %w", result.Attempts, err)
			}
			return fmt.Errorf("run job: %w", err)
		}

		PrintSuccess(fmt.Sprintf("Job %s completed in %.2fs", jobName, result.Duration.Seconds()))
		return nil
	})
}

// newScheduler registers every scan job against the app's aggregator
func newScheduler(a *app) (*scheduler.Scheduler, error) {
	sched := scheduler.New(a.log)

	for _, job := range []scheduler.Job{
		jobs.NewDarkPoolScanJob(a.agg, a.log),
		jobs.NewLottoScanJob(a.agg, a.log),
		jobs.NewWatchlistScanJob(a.agg, a.log),
		jobs.NewFilingsScanJob(a.agg, scheduledForms, a.log),
	} {
		if err := sched.AddJob(job); err != nil {
			return nil, fmt.Errorf("add job %s: %w", job.Name(), err)
		}
	}

	return sched, nil
}
