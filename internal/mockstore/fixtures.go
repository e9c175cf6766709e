package mockstore

import (
	"time"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
)

func seedProducts(now time.Time) []model.Product {
	return []model.Product{
		{
			ID:          "prd-001",
			Name:        "Nike Air Max 270",
			Description: "Premium sports shoes with maximum cushioning and style.",
			Price:       12900,
			Stock:       15,
			Category:    "Footwear",
			Images:      []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff"},
			Sales:       142,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "prd-002",
			Name:        "Apple Watch Series 9",
			Description: "The ultimate device for a healthy life is now even more powerful.",
			Price:       45900,
			Stock:       8,
			Category:    "Wearables",
			Images:      []string{"https://images.unsplash.com/photo-1546868871-70c122469d8b"},
			Sales:       89,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "prd-003",
			Name:        "ASUS VivoBook 15",
			Description: "Powerful and stylish laptop for everyday computing.",
			Price:       107190,
			Stock:       5,
			Category:    "Computer and Accessories",
			Images:      []string{"https://images.unsplash.com/photo-1593642702821-c8da6771f0c6"},
			Sales:       85,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "prd-004",
			Name:        "Bose Smart Speaker 500",
			Description: "Fill any room with wall-to-wall stereo sound.",
			Price:       44900,
			Stock:       12,
			Category:    "Smart Home and Gadgets",
			Images:      []string{"https://images.unsplash.com/photo-1589003077984-894e133dabab"},
			Sales:       42,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "prd-005",
			Name:        "Logitech G502 Hero",
			Description: "High performance wired gaming mouse with 25K DPI sensor.",
			Price:       5495,
			Stock:       25,
			Category:    "Computer and Accessories",
			Images:      []string{"https://images.unsplash.com/photo-1527443224154-c4a3942d3acf"},
			Sales:       432,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func seedOrders(now time.Time) []model.Order {
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []model.Order{
		{
			ID:      "ord-001",
			OrderID: "ORD-1767757582476-925",
			Customer: model.Customer{
				Name:   "Anjali Mehra",
				Email:  "anjali.mehra@example.com",
				Avatar: "https://i.pravatar.cc/100?img=1",
			},
			Items: []model.OrderItem{
				{Name: "Nike Air Max 270", Quantity: 1, Price: 12900},
			},
			TotalAmount:   12989,
			Status:        model.StatusCompleted,
			PaymentMethod: model.PaymentUPI,
			CreatedAt:     daysAgo(0),
			UpdatedAt:     daysAgo(0),
		},
		{
			ID:      "ord-002",
			OrderID: "ORD-1767756912579-706",
			Customer: model.Customer{
				Name:   "Riya Jain",
				Email:  "riya.jain@example.com",
				Avatar: "https://i.pravatar.cc/100?img=5",
			},
			Items: []model.OrderItem{
				{Name: "Apple Watch Series 9", Quantity: 1, Price: 45900},
				{Name: "Logitech G502 Hero", Quantity: 1, Price: 5495},
			},
			TotalAmount:   13389,
			Status:        model.StatusCancelled,
			PaymentMethod: model.PaymentCreditCard,
			CreatedAt:     daysAgo(0),
			UpdatedAt:     daysAgo(0),
		},
		{
			ID:      "ord-003",
			OrderID: "ORD-1767754951538-266",
			Customer: model.Customer{
				Name:   "Nina Malik",
				Email:  "nina.malik@example.com",
				Avatar: "https://i.pravatar.cc/100?img=9",
			},
			Items: []model.OrderItem{
				{Name: "ASUS VivoBook 15", Quantity: 1, Price: 107190},
				{Name: "Logitech G502 Hero", Quantity: 2, Price: 5495},
			},
			TotalAmount:   126400,
			Status:        model.StatusCompleted,
			PaymentMethod: model.PaymentNetBanking,
			CreatedAt:     daysAgo(0),
			UpdatedAt:     daysAgo(0),
		},
		{
			ID:      "ord-004",
			OrderID: "ORD-1767754783910-959",
			Customer: model.Customer{
				Name:   "Meher Gupta",
				Email:  "meher.gupta@example.com",
				Avatar: "https://i.pravatar.cc/100?img=16",
			},
			Items: []model.OrderItem{
				{Name: "Bose Smart Speaker 500", Quantity: 2, Price: 44900},
			},
			TotalAmount:   959,
			Status:        model.StatusCompleted,
			PaymentMethod: model.PaymentUPI,
			CreatedAt:     daysAgo(0),
			UpdatedAt:     daysAgo(0),
		},
		{
			ID:      "ord-005",
			OrderID: "ORD-1767683986849-106",
			Customer: model.Customer{
				Name:   "Vikram Nair",
				Email:  "vikram.nair@example.com",
				Avatar: "https://i.pravatar.cc/100?img=12",
			},
			Items: []model.OrderItem{
				{Name: "Nike Air Max 270", Quantity: 2, Price: 12900},
				{Name: "Apple Watch Series 9", Quantity: 1, Price: 45900},
			},
			TotalAmount:   38499,
			Status:        model.StatusCompleted,
			PaymentMethod: model.PaymentDebitCard,
			CreatedAt:     daysAgo(1),
			UpdatedAt:     daysAgo(1),
		},
		{
			ID:      "ord-006",
			OrderID: "ORD-1767682156234-442",
			Customer: model.Customer{
				Name:   "Priya Sharma",
				Email:  "priya.sharma@example.com",
				Avatar: "https://i.pravatar.cc/100?img=24",
			},
			Items: []model.OrderItem{
				{Name: "Bose Smart Speaker 500", Quantity: 1, Price: 44900},
			},
			TotalAmount:   44900,
			Status:        model.StatusShipped,
			PaymentMethod: model.PaymentCreditCard,
			CreatedAt:     daysAgo(1),
			UpdatedAt:     daysAgo(0),
		},
		{
			ID:      "ord-007",
			OrderID: "ORD-1767598234567-123",
			Customer: model.Customer{
				Name:   "Arjun Patel",
				Email:  "arjun.patel@example.com",
				Avatar: "https://i.pravatar.cc/100?img=33",
			},
			Items: []model.OrderItem{
				{Name: "ASUS VivoBook 15", Quantity: 1, Price: 107190},
			},
			TotalAmount:   107190,
			Status:        model.StatusProcessing,
			PaymentMethod: model.PaymentUPI,
			CreatedAt:     daysAgo(2),
			UpdatedAt:     daysAgo(1),
		},
		{
			ID:      "ord-008",
			OrderID: "ORD-1767512345678-890",
			Customer: model.Customer{
				Name:   "Kavya Reddy",
				Email:  "kavya.reddy@example.com",
				Avatar: "https://i.pravatar.cc/100?img=47",
			},
			Items: []model.OrderItem{
				{Name: "Logitech G502 Hero", Quantity: 3, Price: 5495},
			},
			TotalAmount:   16485,
			Status:        model.StatusDelivered,
			PaymentMethod: model.PaymentCashOnDelivery,
			CreatedAt:     daysAgo(3),
			UpdatedAt:     daysAgo(2),
		},
	}
}
