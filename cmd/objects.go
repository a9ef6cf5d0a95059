package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dealdesk/dcverify/internal/app"
)

var withFieldCounts bool

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "Lists all objects defined on the DealCloud site.",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printUserFacing(err)
			return err
		}

		objects, err := application.Explorer.ListObjects(cmd.Context())
		if err != nil {
			printUserFacing(err)
			return err
		}

		var counts map[int]int
		if withFieldCounts {
			counts, err = application.Explorer.FieldCounts(cmd.Context(), objects)
			if err != nil {
				printUserFacing(err)
				return err
			}
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		if withFieldCounts {
			fmt.Fprintln(tw, "ID\tAPI Name\tSingular\tPlural\tFields")
		} else {
			fmt.Fprintln(tw, "ID\tAPI Name\tSingular\tPlural")
		}
		for _, obj := range objects {
			if withFieldCounts {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n",
					obj.ID, obj.APIName, obj.SingularName, obj.PluralName, counts[obj.ID])
			} else {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					obj.ID, obj.APIName, obj.SingularName, obj.PluralName)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d objects found\n", len(objects))
		return nil
	},
}

func init() {
	objectsCmd.Flags().BoolVar(&withFieldCounts, "counts", false, "Also fetch the number of fields per object")
	rootCmd.AddCommand(objectsCmd)
}
