package main

import "fmt"

// Run executes the setup-db command. Opening the database creates the
// schema, so by the time this runs there is nothing left to do.
func (c *SetupDBCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Database schema ready.")
	return nil
}
