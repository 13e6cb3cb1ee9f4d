package main

import (
	"context"
	"fmt"

	"sevaBack/internal/models"
)

// Sample providers covering the south Bangalore service areas.
var sampleProviders = []models.RegisterProviderRequest{
	{
		Name:      "Akshaya Home Repairs",
		Phone:     "91-9876543210",
		Services:  []string{"plumbing"},
		Price:     450,
		Address:   "123 Main Rd, Akshayanagar, Bangalore, KA 560068",
		Longitude: 77.6222,
		Latitude:  12.8856,
	},
	{
		Name:      "Begur Electricals",
		Phone:     "91-9988776655",
		Services:  []string{"electrical"},
		Price:     550,
		Address:   "45 Lake View, Begur, Bangalore, KA 560068",
		Longitude: 77.6397,
		Latitude:  12.8828,
	},
	{
		Name:      "Jayanagar Deep Clean",
		Phone:     "91-9900112233",
		Services:  []string{"cleaning"},
		Price:     600,
		Address:   "32 4th Block, Jayanagar, Bangalore, KA 560011",
		Longitude: 77.5938,
		Latitude:  12.9250,
	},
	{
		Name:      "Royal Painters",
		Phone:     "91-9900112244",
		Services:  []string{"painting"},
		Price:     800,
		Address:   "15 3rd Block, Jayanagar, Bangalore, KA 560011",
		Longitude: 77.5850,
		Latitude:  12.9300,
	},
	{
		Name:      "Town Carpenters",
		Phone:     "91-9123456780",
		Services:  []string{"carpentry"},
		Price:     700,
		Address:   "MG Road, Kanakapura Town, Ramanagara Dist",
		Longitude: 77.4199,
		Latitude:  12.5462,
	},
	{
		Name:      "Industrial Pest Control",
		Phone:     "91-9123456781",
		Services:  []string{"pest-control"},
		Price:     900,
		Address:   "KIADB Industrial Area, Harohalli, Kanakapura Rd",
		Longitude: 77.4600,
		Latitude:  12.6360,
	},
	{
		Name:      "K-Cross Handyman",
		Phone:     "91-9123456782",
		Services:  []string{"handyman"},
		Price:     400,
		Address:   "Cross Roads, Konanakunte, Bangalore, KA 560062",
		Longitude: 77.5750,
		Latitude:  12.8750,
	},
	{
		Name:      "South Bangalore Movers",
		Phone:     "91-9123456783",
		Services:  []string{"moving"},
		Price:     1200,
		Address:   "Near Metro, Konanakunte, Bangalore, KA 560062",
		Longitude: 77.5760,
		Latitude:  12.8760,
	},
}

// seedProviders inserts the sample set through the registration path so the
// geo index is populated alongside the rows. Already-seeded phones are
// skipped, which makes reruns safe.
func (app *application) seedProviders(ctx context.Context) error {
	for _, req := range sampleProviders {
		p, err := app.providerService.RegisterProvider(ctx, req)
		if err != nil {
			if err == models.ErrDuplicatePhone {
				app.infoLog.Printf("seed: %s already present, skipping", req.Phone)
				continue
			}
			return fmt.Errorf("seed %q: %w", req.Name, err)
		}
		app.infoLog.Printf("seed: %s (%s)", p.Name, p.ID)
	}
	return nil
}
