package commands

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/eatsplit/pkg/api"
)

func friendsCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Print the roster of a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewFriendsServiceClient(http.DefaultClient, addr)

			resp, err := client.ListFriends(cmd.Context(), connect.NewRequest(&api.ListFriendsRequest{}))
			if err != nil {
				return fmt.Errorf("list friends: %w", err)
			}
			return printRoster(cmd, resp.Msg.Roster)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "server base URL")
	return cmd
}

func printRoster(cmd *cobra.Command, r api.Roster) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBALANCE\tSTATUS")
	for _, f := range r.Friends {
		marker := ""
		if f.ID == r.SelectedID {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%.2f\t%s\n", f.ID, f.Name, marker, f.Balance, f.Message)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nowed to you: %.2f  you owe: %.2f  net: %.2f\n",
		r.Totals.OwedToUser, r.Totals.UserOwes, r.Totals.Net)
	return nil
}
