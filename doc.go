// Package sponsorblock is a client for SponsorBlock-compatible
// video-segment annotation services.
//
// Given a video ID and a set of accepted categories, it fetches the
// crowd-sourced skip segments for that video, validates them, and returns
// them as a strongly-typed domain model a player can act on.
//
// Quick Start
//
// Fetch the sponsor segments for a video:
//
//	client, err := sponsorblock.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	categories := sponsorblock.AcceptedCategories{}.Accept(sponsorblock.CategorySponsor)
//	segments, err := client.FetchSegments(ctx, "dQw4w9WgXcQ", categories)
//	if sponsorblock.IsNotFound(err) {
//		fmt.Println("no segments for this video")
//		return
//	}
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range segments {
//		fmt.Printf("%s %s\n", s.Kind(), s.UUID)
//	}
//
// Acting on a segment means switching on its variant:
//
//	switch v := s.ActionableSegment.(type) {
//	case sponsorblock.Highlight:
//		seekTo(v.Point.Point)
//	case sponsorblock.Sponsor:
//		skipRange(v.Section.Start, v.Section.End)
//	}
//
// Private Searches
//
// With Config.PrivateSearches enabled the client never sends the video ID
// to the server. It sends a truncated SHA-256 digest instead, receives every
// video sharing that prefix, and filters to the exact match locally:
//
//	cfg := sponsorblock.DefaultConfig()
//	cfg.PrivateSearches = true
//	client, err := sponsorblock.New(cfg)
//
// Error Handling
//
// All operations return errors that implement standard Go error handling:
//
//	if errors.Is(err, sponsorblock.ErrNoMatchingVideoHash) {
//		// private search found no bucket for this video
//	}
//
//	var badData *sponsorblock.BadDataError
//	if errors.As(err, &badData) {
//		// the server returned a segment that failed validation
//	}
//
// A 404 from the server means no segments exist for the video; use
// IsNotFound to treat it as an empty result.
//
// Sub-packages:
//
//   - http: Thin HTTP transport with typed status errors
//   - config: Configuration management for the CLI
//
package sponsorblock
