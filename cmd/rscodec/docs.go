package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// docsCommand renders the full command reference as markdown, the same way
// urfave/cli's own generated documentation does (pulling in
// cpuguy83/go-md2man's blackfriday/sanitized_anchor_name stack transitively).
var docsCommand = cli.Command{
	Name:  "docs",
	Usage: "print the command reference as markdown",
	Action: func(c *cli.Context) error {
		md, err := c.App.ToMarkdown()
		if err != nil {
			return err
		}
		fmt.Println(md)
		return nil
	},
}
