package main

import (
	"fmt"
	"log"
	"os"

	"github.com/golangdaddy/voiture/pkg/vehicle"
	"github.com/spf13/cobra"
)

// newRootCmd builds the voiture command, which creates a car and prints its speed.
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "voiture",
		Short:         "Create a car and print its speed.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			car := vehicle.NewCar()
			if verbose {
				log.Printf("Car created (speed: %g km/h)", car.Speed())
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "speed: %g km/h\n", car.Speed())
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log car construction")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
