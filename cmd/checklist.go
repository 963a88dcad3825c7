package cmd

import (
	"context"
	"sort"

	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Show today's wellness checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		items, err := client.GetChecklist(context.Background())
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(items))
		for id := range items {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			mark := "[ ]"
			if items[id] {
				mark = "[x]"
			}
			cmd.Printf("%s %s\n", mark, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}
