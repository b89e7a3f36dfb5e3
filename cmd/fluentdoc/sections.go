package main

import (
	"fmt"
	"strings"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	keys := deps.Catalog.KeyNames()

	fmt.Fprintf(deps.Stdout, "Known sections (%d total):\n\n", len(keys))
	for _, key := range keys {
		section := deps.Catalog.Keys[key]
		fmt.Fprintf(deps.Stdout, "  %-24s %s\n", key, section.Name)
		if len(section.Breadcrumb) > 0 {
			fmt.Fprintf(deps.Stdout, "  %-24s %s\n", "", strings.Join(section.Breadcrumb, " > "))
		}
	}
	fmt.Fprintf(deps.Stdout, "\nUse 'fluentdoc get <key>' to fetch a section.\n")

	return nil
}
