package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dealdesk/dcverify/internal/app"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [object]",
	Short: "Shows the live field definitions of a DealCloud object.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printUserFacing(err)
			return err
		}

		name := application.Config.Verify.ObjectName
		if len(args) == 1 {
			name = args[0]
		}

		schema, err := application.Fetcher.FetchSchema(cmd.Context(), name)
		if err != nil {
			printUserFacing(err)
			return err
		}

		fmt.Printf("Object: %s (id %d, singular %q, plural %q)\n\n",
			schema.APIName, schema.ID, schema.SingularName, schema.PluralName)

		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "Field\tType\tRequired\tDetails")
		for _, field := range schema.Fields {
			details := ""
			switch {
			case len(field.Choices) > 0:
				details = "choices: " + strings.Join(field.Choices, ", ")
			case len(field.ReferenceTargets) > 0:
				details = "references: " + strings.Join(field.ReferenceTargets, ", ")
			}
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", field.Name, field.Type, field.Required, details)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d fields\n", len(schema.Fields))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
