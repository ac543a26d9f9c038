package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/overtime/internal/calculator"
)

func newPayCmd() *cobra.Command {
	var (
		salary  float64
		endHour int
		minutes int
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Compute the overtime pay for one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pay, err := calculator.ComputePay(salary, endHour, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "overtime: %.2fh\npay: %d\n",
				calculator.OvertimeHours(endHour, minutes), pay)
			return nil
		},
	}

	cmd.Flags().Float64Var(&salary, "salary", 0, "monthly salary")
	cmd.Flags().IntVar(&endHour, "end-hour", calculator.ShiftEndHour, "hour the session ended (19 or later)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutes past the end hour (0-59)")
	_ = cmd.MarkFlagRequired("salary")

	return cmd
}
