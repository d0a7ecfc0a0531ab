package main

import (
	"context"
	"fmt"
	"os"

	curriculum "github.com/goliatone/go-curriculum"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := curriculum.DefaultConfig()
	cfg.Features.Loader = false
	cfg.Features.Commands = false
	cfg.Logging.Level = "info"

	mod, err := curriculum.New(cfg,
		curriculum.WithRecords(curriculum.BuiltinTopics(), curriculum.BuiltinSections()),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc := mod.Catalog()

	sections, err := svc.Sections(ctx)
	if err != nil {
		return err
	}

	for _, section := range sections {
		fmt.Printf("== %s (%s)\n", section.Name, section.Level)

		topics, err := svc.TopicsBySection(ctx, section.ID)
		if err != nil {
			return err
		}
		for _, topic := range topics {
			fmt.Printf("   %-30s /%s\n", topic.Name, topic.Slug)
		}
	}

	topic, err := svc.TopicBySlug(ctx, "solid")
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Lookup by slug \"solid\":", topic.Name)
	fmt.Println("Key points:")
	for _, point := range topic.KeyPoints {
		fmt.Println("  -", point)
	}

	if report := mod.BuildReport(); report != nil && report.HasWarnings() {
		fmt.Printf("\n%d content warning(s)\n", len(report.Warnings))
	}

	return nil
}
