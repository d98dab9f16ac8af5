package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewsmnv/polyarena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the registered games",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("no games registered")
		return
	}

	for _, g := range games {
		fmt.Printf("%-8s %s\n", g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("start one with: polyarena play <id>")
}
