package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rinasm/journeymap/pkg/adapters/file"
	"github.com/rinasm/journeymap/pkg/domain"
)

func main() {
	target := "journeys.yaml"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	fmt.Printf("Generating sample journeys in: %s\n", target)

	doc := file.Document{
		Label: "Storefront",
		Page:  "https://shop.example.com",
		Journeys: []domain.Journey{
			{
				ID:         "checkout",
				Name:       "Checkout",
				Confidence: 92,
				Steps: []domain.Step{
					{Order: 1, Description: "Add to cart"},
					{Order: 2, Description: "Click checkout"},
				},
			},
			{
				ID:         "login",
				Name:       "User Login",
				Confidence: 75.5,
				Steps: []domain.Step{
					{Order: 1, Description: "Open login form"},
					{Order: 2, Description: "Enter username", RequiresData: true, DataType: "text"},
					{Order: 3, Description: "Enter password", RequiresData: true, DataType: "password"},
					{Order: 4, Description: "Click submit"},
				},
			},
			{
				ID:         "search",
				Name:       "Product Search",
				Confidence: 61,
				Steps: []domain.Step{
					{Order: 1, Description: "Focus search box"},
					{Order: 2, Description: "Type query", RequiresData: true, DataType: "text"},
					{Order: 3, Description: "Press enter"},
				},
			},
		},
	}

	data, err := yaml.Marshal(&doc)
	check(err)
	check(os.WriteFile(target, data, 0644))

	fmt.Println("Done. Try: journeymap render --file " + target)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
