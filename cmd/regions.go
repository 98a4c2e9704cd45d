package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions of the city page without scraping them",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cityURL := cfg.Site.CityURL
		if cmd.Flags().Changed("city-url") {
			cityURL, _ = cmd.Flags().GetString("city-url")
		}
		if cityURL == "" {
			return eris.New("regions: site.city_url is required")
		}

		s, err := newScraper(cfg.Site)
		if err != nil {
			return err
		}
		regions, err := s.Regions(ctx, cityURL)
		if err != nil {
			return eris.Wrap(err, "regions")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "REGION\tRESTAURANTS\tURL")
		total := 0
		for _, r := range regions {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Name, r.AdvertisedCount, r.ListingURL)
			total += r.AdvertisedCount
		}
		fmt.Fprintf(tw, "%d regions\t%d\t\n", len(regions), total)
		return tw.Flush()
	},
}

func init() {
	regionsCmd.Flags().String("city-url", "", "city page URL (overrides site.city_url)")
	rootCmd.AddCommand(regionsCmd)
}
