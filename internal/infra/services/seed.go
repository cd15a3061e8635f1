package services

import "support-widget/internal/domain/entities"

// SampleProducts is the starter catalogue written into an empty products collection.
func SampleProducts() []entities.Product {
	return []entities.Product{
		{
			ID:          "prod1",
			Name:        "Modern Leather Sofa",
			Description: "Elegant modern sofa with genuine leather upholstery.",
			Price:       1299,
			Category:    "living",
			SofaType:    "sectional",
			Image:       "/images/sofa1.jpg",
			Dimensions:  `84"W x 38"D x 34"H`,
			Material:    "Leather",
			Color:       "Brown",
		},
		{
			ID:          "prod2",
			Name:        "Coastal Dining Table",
			Description: "Beautiful dining table perfect for coastal homes.",
			Price:       899,
			Category:    "dining",
			Image:       "/images/table1.jpg",
			Dimensions:  `72"L x 38"W x 30"H`,
			Material:    "Solid Wood",
			Color:       "Whitewash",
		},
		{
			ID:          "prod3",
			Name:        "Outdoor Patio Lounger",
			Description: "Weather-resistant lounger for your patio or pool area.",
			Price:       499,
			Category:    "outdoor",
			Image:       "/images/lounger1.jpg",
			Dimensions:  `78"L x 28"W x 15"H`,
			Material:    "Wicker/Aluminum",
			Color:       "Beige",
		},
	}
}

// SampleChatResponses are the canned answers written into an empty chat responses collection.
func SampleChatResponses() []entities.ChatResponseEntry {
	return []entities.ChatResponseEntry{
		{
			ID:       "sample1",
			Question: "What furniture do you sell?",
			Answer:   "We sell a variety of furniture including sofas, chairs, tables, and outdoor furniture.",
		},
		{
			ID:       "sample2",
			Question: "delivery options",
			Answer:   "We offer free delivery for orders over $500 within 50 miles of our showroom.",
		},
		{
			ID:       "sample3",
			Question: "warranty",
			Answer:   "All of our furniture comes with a 1-year warranty covering manufacturing defects.",
		},
	}
}
