// Command stepfuse composes a monolithic Part 21 STEP exchange file
// from an assembly tree of linked STEP files.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.StandardLogger()

	root := &cobra.Command{
		Use:   "stepfuse",
		Short: "Compose a single STEP exchange file from a linked assembly tree",
	}

	root.AddCommand(newComposeCmd(log))
	root.AddCommand(newServeCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
