package cli

import (
	"encoding/json"
	"fmt"

	"entity-registry/internal/mapper"

	"github.com/spf13/cobra"
)

func importCmd(a *app) *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "import FILE...",
		Short: "Build users from record files and report rejected records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rejected := 0
			for _, path := range args {
				records, err := readRecords(path)
				if err != nil {
					return err
				}
				res, err := a.uc.ImportUsers(cmd.Context(), records)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: imported %d, rejected %d\n", path, res.Imported, len(res.Failed))
				for _, f := range res.Failed {
					fmt.Fprintf(out, "  record %d: %s\n", f.Index, f.Error)
				}
				rejected += len(res.Failed)
			}

			stats, err := a.uc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "total users: %d\n", stats.StoredUsers)

			if strict && rejected > 0 {
				return fmt.Errorf("%d records rejected", rejected)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "exit with an error if any record is rejected")
	return c
}

func lookupCmd(a *app) *cobra.Command {
	var files []string
	var email string

	c := &cobra.Command{
		Use:   "lookup",
		Short: "Print the first user with the given email as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, path := range files {
				records, err := readRecords(path)
				if err != nil {
					return err
				}
				if _, err := a.uc.ImportUsers(cmd.Context(), records); err != nil {
					return err
				}
			}

			usr, err := a.uc.FindUser(cmd.Context(), email)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(mapper.ToDTOUser(usr))
		},
	}

	c.Flags().StringSliceVarP(&files, "file", "f", nil, "record file (repeatable)")
	c.Flags().StringVarP(&email, "email", "e", "", "email to look up")
	_ = c.MarkFlagRequired("file")
	_ = c.MarkFlagRequired("email")
	return c
}
