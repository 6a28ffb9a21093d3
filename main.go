// Package main provides the pupdb CLI application.
// pupdb manages the lifecycle of the privacy UI pattern catalog
// PostgreSQL database and serves its read-only JSON API.
package main

import "github.com/privacyui/pupdb/cmd"

func main() {
	cmd.Execute()
}
