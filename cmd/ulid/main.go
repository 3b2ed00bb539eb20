package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kdawgwilk/ex-ulid/pkg/ulid"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and inspect ULIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		count int
		at    string
	)
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate one or more ULIDs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms := int64(-1)
			if at != "" {
				parsed, err := ulid.ParseTimestamp(at)
				if err != nil {
					return err
				}
				ms = parsed
			}
			for i := 0; i < count; i++ {
				var (
					s   string
					err error
				)
				if at != "" {
					s, err = ulid.GenerateTime(ms)
				} else {
					s, err = ulid.Generate()
				}
				if err != nil {
					return err
				}
				fmt.Println(s)
			}
			return nil
		},
	}
	newCmd.Flags().IntVarP(&count, "count", "n", 1, "number of ULIDs to generate")
	newCmd.Flags().StringVarP(&at, "time", "t", "", "epoch-millisecond timestamp to embed")

	inspectCmd := &cobra.Command{
		Use:   "inspect <ulid>",
		Short: "Decode a ULID into its time, randomness and binary form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := ulid.Decode(args[0])
			if err != nil {
				return err
			}
			bin, err := ulid.ToBinary(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("time:       %d\n", dec.Time)
			fmt.Printf("timestamp:  %s\n", time.UnixMilli(dec.Time).UTC().Format(time.RFC3339Nano))
			fmt.Printf("randomness: %s\n", dec.Randomness)
			fmt.Printf("binary:     %x\n", bin[:])
			return nil
		},
	}

	rootCmd.AddCommand(newCmd, inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
