package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmilon47/passgrade/internal/policy"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List built-in scoring policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := policy.List()
			if err != nil {
				return fmt.Errorf("failed to list policies: %w", err)
			}
			for _, name := range names {
				p, err := policy.LoadBuiltin(name)
				if err != nil {
					return fmt.Errorf("failed to load policy %s: %w", name, err)
				}
				fmt.Printf("%s\t%s\n", p.Name, strings.TrimSpace(p.Description))
			}
			return nil
		},
	}
}
