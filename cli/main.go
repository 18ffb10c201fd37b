package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"sponsorblock"
	"sponsorblock/config"
	httpclient "sponsorblock/http"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "segments":
		cmdSegments(args)
	case "hash":
		cmdHash(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Assume it's a segments command for convenience
		cmdSegments(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `sponsorblock - fetch crowd-sourced skip segments for a video

Usage:
  sponsorblock segments [flags] <video-id>  Fetch skip segments for a video
  sponsorblock hash <video-id>              Print the video ID hash used by private searches
  sponsorblock help                         Show this help message

Examples:
  sponsorblock segments dQw4w9WgXcQ                          # Sponsor segments (default)
  sponsorblock segments --categories sponsor,intro <id>      # Specific categories
  sponsorblock segments --categories all <id>                # Everything the service knows
  sponsorblock segments --private <id>                       # k-anonymity lookup
  sponsorblock segments --json <id>                          # Machine-readable output

For help on specific command: sponsorblock <command> -h
`)
}

func cmdSegments(args []string) {
	fs := flag.NewFlagSet("segments", flag.ExitOnError)
	categoriesStr := fs.String("categories", "", "Comma-separated categories, or 'all' (default from config)")
	private := fs.Bool("private", false, "Use a private (hash prefix) search")
	prefixLength := fs.Int("hash-prefix-length", 0, "Hash prefix length for private searches (default from config)")
	requiredStr := fs.String("required", "", "Comma-separated segment UUIDs to include regardless of votes")
	service := fs.String("service", "", "Video host platform (default from config)")
	baseURL := fs.String("base-url", "", "Segment service API root (default from config)")
	asJSON := fs.Bool("json", false, "Print segments as JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sponsorblock segments [flags] <video-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}

	videoID := argv[0]

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *service != "" {
		cfg.Service = *service
	}
	if *private {
		cfg.PrivateSearches = true
	}
	if *prefixLength != 0 {
		cfg.HashPrefixLength = *prefixLength
	}
	if *categoriesStr != "" {
		cfg.Categories = splitList(*categoriesStr)
	}

	// Build the accepted-categories set
	categories := sponsorblock.AcceptedCategories{}
	for _, c := range cfg.Categories {
		if c == "all" {
			categories = sponsorblock.AcceptAll()
			break
		}
		categories = categories.Accept(sponsorblock.Category(c))
	}

	var required []string
	if *requiredStr != "" {
		required = splitList(*requiredStr)
	}

	client, err := sponsorblock.New(&sponsorblock.Config{
		BaseURL:          cfg.BaseURL,
		Service:          cfg.Service,
		PrivateSearches:  cfg.PrivateSearches,
		HashPrefixLength: cfg.HashPrefixLength,
		HTTP: &httpclient.Config{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			Transport: httpclient.DefaultTransportConfig(),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	segments, err := client.FetchSegmentsWithRequired(ctx, videoID, categories, required)
	if sponsorblock.IsNotFound(err) {
		fmt.Fprintf(os.Stderr, "No segments found for %s.\n", videoID)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching segments: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(segments); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding segments: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(segments) == 0 {
		fmt.Println("No segments found.")
		return
	}

	// Format and print results
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tACTION\tRANGE\tVOTES\tLOCKED\tUUID")

	for _, s := range segments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\t%s\n",
			s.Kind(),
			s.ActionType,
			formatRange(s.ActionableSegment),
			s.Votes,
			s.Locked,
			s.UUID,
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d segments\n", len(segments))
}

func cmdHash(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sponsorblock hash <video-id>\n")
	}
	fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Println(sponsorblock.HashVideoID(argv[0]))
}

// formatRange renders a segment's time payload for table output.
func formatRange(actionable sponsorblock.ActionableSegment) string {
	switch v := actionable.(type) {
	case sponsorblock.Sponsor:
		return formatSection(v.Section)
	case sponsorblock.UnpaidSelfPromotion:
		return formatSection(v.Section)
	case sponsorblock.InteractionReminder:
		return formatSection(v.Section)
	case sponsorblock.Highlight:
		return fmt.Sprintf("@%s", formatSeconds(v.Point.Point))
	case sponsorblock.IntermissionIntroAnimation:
		return formatSection(v.Section)
	case sponsorblock.EndcardsCredits:
		return formatSection(v.Section)
	case sponsorblock.PreviewRecap:
		return formatSection(v.Section)
	case sponsorblock.NonMusic:
		return formatSection(v.Section)
	}
	return ""
}

func formatSection(s sponsorblock.TimeSection) string {
	return fmt.Sprintf("%s-%s", formatSeconds(s.Start), formatSeconds(s.End))
}

func formatSeconds(seconds float32) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
