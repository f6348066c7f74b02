package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/colophon-press/colophon/modules/catalogue/domain/imprint"
	"github.com/colophon-press/colophon/modules/catalogue/domain/publisher"
	"github.com/colophon-press/colophon/modules/catalogue/services"
	"github.com/colophon-press/colophon/pkg/access"
	"github.com/colophon-press/colophon/pkg/composables"
	"github.com/colophon-press/colophon/pkg/configuration"
	"github.com/colophon-press/colophon/pkg/eventbus"
)

func str(s string) *string { return &s }

// newSeedCmd creates a demonstration publisher with one imprint, running the
// full service stack as a superuser.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demonstration publisher and imprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			log := conf.Logger()

			pool, err := conf.Database.Pool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			ctx = composables.WithAccess(ctx, access.Superuser())
			ctx = composables.WithAccount(ctx, uuid.New())

			registry := services.NewRegistry(eventbus.NewEventPublisher(log))
			return seed(ctx, registry, log.Infof)
		},
	}
}

func seed(ctx context.Context, registry *services.Registry, infof func(string, ...interface{})) error {
	pub, err := registry.Publishers.Create(ctx, publisher.NewPublisher{
		PublisherName:      "Colophon Press",
		PublisherShortname: str("CP"),
		PublisherURL:       str("https://colophon.example.com"),
	})
	if err != nil {
		return err
	}
	infof("created publisher %s", pub.PublisherID)

	imp, err := registry.Imprints.Create(ctx, imprint.NewImprint{
		PublisherID: pub.PublisherID,
		ImprintName: "Colophon Editions",
		ImprintURL:  str("https://editions.colophon.example.com"),
	})
	if err != nil {
		return err
	}
	infof("created imprint %s", imp.ImprintID)
	return nil
}
