package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/annazecevic/band-service/domain"
	"github.com/annazecevic/band-service/repository"
	"github.com/annazecevic/band-service/service"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var catalogGenre string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the band catalogue as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return printCatalog(ctx, cmd.OutOrStdout(), catalogGenre)
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogGenre, "genre", "g", "", "only show bands of this genre")
	RootCmd.AddCommand(catalogCmd)
}

func printCatalog(ctx context.Context, w io.Writer, genre string) error {
	repo, err := repository.NewBandRepository(repository.SeedBands())
	if err != nil {
		return err
	}
	svc := service.NewBandService(repo)

	var bands []domain.Band
	if genre == "" {
		bands, err = svc.ListBands(ctx)
	} else {
		g, perr := domain.ParseGenre(genre)
		if perr != nil {
			return perr
		}
		bands, err = svc.ListBandsByGenre(ctx, g)
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Genre", "Albums"})

	for _, b := range bands {
		table.Append([]string{
			strconv.Itoa(b.ID),
			b.Name,
			b.Genre,
			formatAlbums(b.Albums),
		})
	}
	table.Render()

	fmt.Fprintf(w, "%d band(s)\n", len(bands))
	return nil
}

func formatAlbums(albums []domain.Album) string {
	if len(albums) == 0 {
		return "-"
	}
	parts := make([]string, len(albums))
	for i, a := range albums {
		parts[i] = fmt.Sprintf("%s (%s)", a.Title, a.ReleaseDate)
	}
	return strings.Join(parts, ", ")
}
