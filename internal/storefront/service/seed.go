package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/cryptox"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// DemoPassword is the password of both demo accounts.
const DemoPassword = "123456"

var ErrAlreadySeeded = errors.New("already_seeded")

type demoProduct struct {
	name        string
	description string
	price       domain.Cents
	category    domain.Category
	image       string
	stock       int
}

var demoProducts = []demoProduct{
	{"Split Air Conditioner 1.5 Ton", "Energy efficient split AC with cooling capacity of 1.5 ton, perfect for medium rooms.",
		45000, domain.CategoryAirConditioning, "Split Air Conditioner 1.5 Ton.jpg", 25},
	{"Window Air Conditioner 1 Ton", "Compact window AC unit with 1 ton cooling capacity, ideal for small rooms.",
		32000, domain.CategoryAirConditioning, "Window Air Conditioner 1 Ton.jpg", 15},
	{"Kitchen Sink Faucet", "Stainless steel kitchen faucet with pull-out spray and ceramic disc valves.",
		8500, domain.CategoryPlumbing, "Kitchen Sink Faucet.jpg", 40},
	{"Bathroom Shower Set", "Complete shower set with rainfall showerhead and handheld shower.",
		12000, domain.CategoryPlumbing, "Bathroom Shower Set.jpg", 30},
	{"Fire Extinguisher 5kg", "ABC dry powder fire extinguisher, suitable for all types of fires.",
		3500, domain.CategoryFireFighting, "Fire Extinguisher 5kg.jpg", 50},
	{"Smoke Detector", "Battery operated smoke detector with loud alarm and test button.",
		2500, domain.CategoryFireFighting, "Smoke Detector.jpg", 60},
	{"Central Air Conditioning Unit", "High capacity central AC system for large buildings and offices.",
		120000, domain.CategoryAirConditioning, "Central Air Conditioning Unit.jpg", 8},
	{"Water Heater 50L", "Electric water heater with 50 liter capacity and temperature control.",
		18000, domain.CategoryPlumbing, "Water Heater 50L.png", 20},
}

// SeedService loads demo accounts and products into an empty database.
type SeedService struct {
	Store store.Store
}

// IsSeeded reports whether any identity exists yet.
func (s *SeedService) IsSeeded(ctx context.Context) (bool, error) {
	empty, err := s.Store.Identities().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// SeedDemoData creates admin@example.com (ADMIN), user@example.com (USER)
// and the demo catalog in one transaction. It returns ErrAlreadySeeded when
// the database already has identities.
func (s *SeedService) SeedDemoData(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	if seeded, err := s.IsSeeded(ctx); err != nil {
		return err
	} else if seeded {
		return ErrAlreadySeeded
	}

	hash, err := cryptox.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		accounts := []domain.Identity{
			{FirstName: "Admin", LastName: "User", Email: "admin@example.com", Role: domain.RoleAdmin},
			{FirstName: "Regular", LastName: "User", Email: "user@example.com", Role: domain.RoleUser},
		}
		for _, a := range accounts {
			a.SecretHash = hash
			a.Avatar = domain.DefaultAvatar
			if _, err := tx.Identities().Create(ctx, a); err != nil {
				l.Error("failed to create demo identity", slog.String("email", a.Email), slog.Any("error", err))
				return err
			}
		}

		for _, p := range demoProducts {
			_, err := tx.Products().Create(ctx, domain.Product{
				Name:        p.name,
				Description: p.description,
				Price:       p.price,
				Category:    p.category,
				Image:       p.image,
				Stock:       p.stock,
			})
			if err != nil {
				l.Error("failed to create demo product", slog.String("name", p.name), slog.Any("error", err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.Info("seeded demo data",
		slog.Int("identities", 2),
		slog.Int("products", len(demoProducts)),
	)
	return nil
}
