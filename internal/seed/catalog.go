package seed

import "shopsphere/internal/model"

func categories() []model.Category {
	return []model.Category{
		{Name: "Seeds", Image: "https://via.placeholder.com/150?text=Seeds"},
		{Name: "Fertilizers", Image: "https://via.placeholder.com/150?text=Fertilizers"},
		{Name: "Tools", Image: "https://via.placeholder.com/150?text=Tools"},
		{Name: "Machinery", Image: "https://via.placeholder.com/150?text=Machinery"},
		{Name: "Produce", Image: "https://via.placeholder.com/150?text=Produce"},
		{Name: "Livestock", Image: "https://via.placeholder.com/150?text=Livestock"},
	}
}

func p(name string, price, originalPrice float64, discount int, rating float64, reviews int, image string, categoryID uint) model.Product {
	cat := categoryID
	return model.Product{
		Name:          name,
		Price:         price,
		OriginalPrice: &originalPrice,
		Discount:      discount,
		Rating:        rating,
		Reviews:       reviews,
		Image:         "https://via.placeholder.com/200?text=" + image,
		CategoryID:    &cat,
	}
}

func products() []model.Product {
	return []model.Product{
		p("John Deere Tractor", 25000, 28000, 11, 4.8, 450, "Tractor", 4),
		p("Organic Seed Pack", 25, 35, 29, 4.6, 320, "Seeds", 1),
		p("NPK Fertilizer 50kg", 45, 55, 18, 4.4, 280, "Fertilizer", 2),
		p("Farm Tools Set", 120, 150, 20, 4.5, 190, "Tools", 3),
		p("Irrigation System", 299, 399, 25, 4.3, 180, "Irrigation", 3),
		p("Pesticide Spray", 35, 50, 30, 4.1, 220, "Spray", 3),
		p("Harvesting Tools", 85, 110, 23, 4.4, 150, "Harvest", 3),
		p("Greenhouse Kit", 450, 600, 25, 4.6, 90, "Greenhouse", 3),
		p("Corn Seeds 10kg", 40, 50, 20, 4.5, 200, "Corn+Seeds", 1),
		p("Wheat Seeds 5kg", 30, 40, 25, 4.3, 180, "Wheat+Seeds", 1),
		p("Rice Seeds 2kg", 20, 25, 20, 4.4, 150, "Rice+Seeds", 1),
		p("Soybean Seeds 3kg", 35, 45, 22, 4.6, 120, "Soybean+Seeds", 1),
		p("Potato Seeds 1kg", 15, 20, 25, 4.2, 100, "Potato+Seeds", 1),
		p("Tomato Seeds 500g", 10, 15, 33, 4.1, 90, "Tomato+Seeds", 1),
		p("Carrot Seeds 200g", 8, 12, 33, 4.0, 80, "Carrot+Seeds", 1),
		p("Lettuce Seeds 100g", 5, 8, 38, 3.9, 70, "Lettuce+Seeds", 1),
		p("Urea Fertilizer 25kg", 25, 30, 17, 4.3, 250, "Urea", 2),
		p("Phosphate Fertilizer 20kg", 30, 40, 25, 4.5, 220, "Phosphate", 2),
		p("Potash Fertilizer 15kg", 35, 45, 22, 4.4, 200, "Potash", 2),
		p("Organic Compost 50kg", 20, 25, 20, 4.6, 180, "Compost", 2),
		p("Lime Fertilizer 10kg", 15, 20, 25, 4.2, 160, "Lime", 2),
		p("Micronutrient Mix 5kg", 50, 65, 23, 4.7, 140, "Micronutrient", 2),
		p("Garden Hose 50ft", 25, 35, 29, 4.3, 300, "Hose", 3),
		p("Shovel Set", 40, 50, 20, 4.4, 280, "Shovel", 3),
		p("Pruning Shears", 15, 20, 25, 4.1, 260, "Shears", 3),
		p("Wheelbarrow", 80, 100, 20, 4.5, 240, "Wheelbarrow", 3),
		p("Garden Gloves", 10, 15, 33, 4.0, 220, "Gloves", 3),
		p("Soil Tester Kit", 30, 40, 25, 4.2, 200, "Soil+Tester", 3),
		p("Seed Drill Machine", 500, 650, 23, 4.6, 100, "Seed+Drill", 4),
		p("Plow Attachment", 200, 250, 20, 4.4, 80, "Plow", 4),
		p("Harvester Combine", 15000, 18000, 17, 4.8, 50, "Harvester", 4),
		p("Irrigation Pump", 300, 400, 25, 4.3, 120, "Pump", 4),
		p("Sprinkler System", 150, 200, 25, 4.5, 140, "Sprinkler", 4),
		p("Drip Irrigation Kit", 100, 130, 23, 4.4, 160, "Drip", 4),
		p("Fresh Apples 5kg", 15, 20, 25, 4.2, 300, "Apples", 5),
		p("Organic Bananas 2kg", 8, 10, 20, 4.3, 280, "Bananas", 5),
		p("Carrots 3kg", 6, 8, 25, 4.1, 260, "Carrots", 5),
		p("Potatoes 10kg", 12, 15, 20, 4.0, 240, "Potatoes", 5),
		p("Tomatoes 2kg", 5, 7, 29, 3.9, 220, "Tomatoes", 5),
		p("Lettuce Bundle", 4, 6, 33, 4.2, 200, "Lettuce", 5),
		p("Broccoli Heads", 7, 9, 22, 4.4, 180, "Broccoli", 5),
		p("Strawberries 500g", 10, 13, 23, 4.5, 160, "Strawberries", 5),
		p("Milk Cow", 1500, 1800, 17, 4.6, 50, "Cow", 6),
		p("Chicken Feed 20kg", 25, 30, 17, 4.3, 100, "Chicken+Feed", 6),
		p("Pig Fattening Feed 50kg", 40, 50, 20, 4.4, 80, "Pig+Feed", 6),
		p("Sheep Wool", 50, 65, 23, 4.5, 60, "Wool", 6),
		p("Goat Milk 5L", 20, 25, 20, 4.2, 90, "Goat+Milk", 6),
		p("Beef Meat 2kg", 30, 40, 25, 4.1, 70, "Beef", 6),
		p("Eggs 12 Pack", 6, 8, 25, 4.0, 150, "Eggs", 6),
		p("Honey 1kg", 15, 20, 25, 4.3, 120, "Honey", 6),
		p("Cheese Wheel 2kg", 25, 35, 29, 4.4, 100, "Cheese", 6),
		p("Butter 500g", 8, 10, 20, 4.2, 110, "Butter", 6),
		p("Yogurt 1L", 5, 7, 29, 4.1, 130, "Yogurt", 6),
	}
}
