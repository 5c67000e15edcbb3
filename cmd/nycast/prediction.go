package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nycast/client/domain"
)

func newPredictCmd() *cobra.Command {
	var paid bool

	cmd := &cobra.Command{
		Use:   "predict <district>",
		Short: "Submit a demand forecast job for an NYC district",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			district, err := parseDistrict(args[0])
			if err != nil {
				return err
			}

			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			var id int64
			if paid {
				id, err = c.predictions.SubmitPaid(cmd.Context(), district)
			} else {
				id, err = c.predictions.SubmitFree(cmd.Context(), district)
			}
			if err != nil {
				return c.renderErr(err, "submission failed")
			}

			fmt.Printf("job submitted, id: %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&paid, "paid", false, "use the billed forecast variant")
	return cmd
}

func newJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job <id>",
		Short: "Fetch a submitted forecast job by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseJobID(args[0])
			if err != nil {
				return err
			}

			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			job, err := c.predictions.FetchByID(cmd.Context(), id)
			if err != nil {
				return c.renderErr(err, "failed to fetch prediction")
			}

			printJob(job)
			return nil
		},
	}
}

func newJobsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Show the forecast job history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCore(cmd)
			if err != nil {
				return err
			}
			defer c.close()

			h := c.predictions.History
			if all {
				err = h.Toggle(cmd.Context())
			} else {
				err = h.Load(cmd.Context())
			}
			if err != nil {
				return c.renderErr(err, "failed to load history")
			}

			entries := h.Entries()
			if len(entries) == 0 {
				fmt.Println("no records")
				return nil
			}
			for _, job := range entries {
				result := "-"
				if len(job.Result) > 0 {
					result = string(job.Result)
				}
				fmt.Printf("id %-6d district %-4d %-12s %s  %s\n",
					job.ID, job.District, job.Status, result, job.Timestamp)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show the full history instead of the recent window")
	return cmd
}

func printJob(job *domain.PredictionJob) {
	fmt.Printf("id:       %d\n", job.ID)
	fmt.Printf("model:    %s\n", job.Model)
	fmt.Printf("city:     %s\n", job.City)
	fmt.Printf("district: %d\n", job.District)
	fmt.Printf("hour:     %d\n", job.Hour)
	fmt.Printf("cost:     %.2f\n", job.Cost)
	fmt.Printf("status:   %s\n", job.Status)
	if len(job.Result) > 0 {
		fmt.Printf("result:   %s\n", string(job.Result))
	} else {
		fmt.Printf("result:   -\n")
	}
	fmt.Printf("time:     %s\n", job.Timestamp)
}
