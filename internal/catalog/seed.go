package catalog

import "tableside-pos/internal/domain"

func seedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:            "1",
			Name:          "Phở Bò",
			NameEn:        "Beef Pho",
			Description:   "Phở bò truyền thống với nước dùng thơm ngon, thịt bò tươi và rau thơm",
			DescriptionEn: "Traditional beef pho with aromatic broth, fresh beef and herbs",
			Price:         65000,
			ImageURL:      "https://images.unsplash.com/photo-1591814468924-caf88d1232e1?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryMainCourse, domain.CategoryVietnamese},
			Available:     true,
			Rating:        4.8,
			ReviewCount:   156,
			PrepTime:      15,
			Ingredients:   "Bánh phở, thịt bò, hành, ngò, giá đỗ, chanh, ớt",
		},
		{
			ID:            "2",
			Name:          "Bún Chả Hà Nội",
			NameEn:        "Hanoi Grilled Pork with Noodles",
			Description:   "Bún chả truyền thống Hà Nội với thịt nướng thơm lừng",
			DescriptionEn: "Traditional Hanoi grilled pork with rice noodles",
			Price:         55000,
			ImageURL:      "https://images.unsplash.com/photo-1559847844-5315695dadae?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryMainCourse, domain.CategoryVietnamese},
			Available:     true,
			Rating:        4.7,
			ReviewCount:   143,
			PrepTime:      20,
			Ingredients:   "Bún, thịt nướng, chả, nước mắm chua ngọt, rau sống",
		},
		{
			ID:            "3",
			Name:          "Gỏi Cuốn",
			NameEn:        "Fresh Spring Rolls",
			Description:   "Gỏi cuốn tươi với tôm, thịt, bún và rau sống, kèm nước chấm",
			DescriptionEn: "Fresh spring rolls with shrimp, pork, noodles and vegetables",
			Price:         35000,
			ImageURL:      "https://images.unsplash.com/photo-1594756202469-9ff9799b2e4e?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryAppetizer, domain.CategoryVietnamese},
			Available:     true,
			Rating:        4.6,
			ReviewCount:   98,
			PrepTime:      10,
			Ingredients:   "Bánh tráng, tôm, thịt heo, bún, rau sống, đậu phộng",
		},
		{
			ID:            "4",
			Name:          "Steak Bò Úc",
			NameEn:        "Australian Beef Steak",
			Description:   "Thịt bò Úc nhập khẩu, nướng chín vừa, kèm khoai tây chiên",
			DescriptionEn: "Imported Australian beef steak, medium rare, with french fries",
			Price:         250000,
			ImageURL:      "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryMainCourse, domain.CategoryWestern},
			Available:     true,
			Rating:        4.9,
			ReviewCount:   234,
			PrepTime:      25,
			Ingredients:   "Thịt bò Úc, khoai tây, bơ, tỏi, tiêu, muối",
		},
		{
			ID:            "5",
			Name:          "Spaghetti Carbonara",
			NameEn:        "Spaghetti Carbonara",
			Description:   "Mì Ý sốt kem trứng và bacon, phô mai Parmesan",
			DescriptionEn: "Italian pasta with creamy egg sauce and bacon, Parmesan cheese",
			Price:         95000,
			ImageURL:      "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryMainCourse, domain.CategoryWestern},
			Available:     true,
			Rating:        4.5,
			ReviewCount:   187,
			PrepTime:      18,
			Ingredients:   "Spaghetti, bacon, trứng, phô mai Parmesan, kem",
		},
		{
			ID:            "6",
			Name:          "Salad Caesar",
			NameEn:        "Caesar Salad",
			Description:   "Salad xà lách với sốt Caesar, gà nướng, phô mai và bánh mì nướng",
			DescriptionEn: "Lettuce salad with Caesar dressing, grilled chicken, cheese and croutons",
			Price:         75000,
			ImageURL:      "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryAppetizer, domain.CategoryWestern, domain.CategoryVegetarian},
			Available:     true,
			Rating:        4.4,
			ReviewCount:   112,
			PrepTime:      12,
			Ingredients:   "Xà lách, gà nướng, phô mai Parmesan, sốt Caesar, bánh mì nướng",
		},
		{
			ID:            "7",
			Name:          "Chè Ba Màu",
			NameEn:        "Three Color Dessert",
			Description:   "Chè ba màu truyền thống với đậu đỏ, đậu xanh, thạch và nước cốt dừa",
			DescriptionEn: "Traditional Vietnamese three-color dessert with beans and coconut milk",
			Price:         25000,
			ImageURL:      "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryDessert, domain.CategoryVietnamese},
			Available:     true,
			Rating:        4.3,
			ReviewCount:   89,
			PrepTime:      5,
			Ingredients:   "Đậu đỏ, đậu xanh, thạch, nước cốt dừa, đá bào",
		},
		{
			ID:            "8",
			Name:          "Tiramisu",
			NameEn:        "Tiramisu",
			Description:   "Bánh Tiramisu Ý truyền thống với cà phê espresso và mascarpone",
			DescriptionEn: "Traditional Italian Tiramisu with espresso and mascarpone",
			Price:         65000,
			ImageURL:      "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryDessert, domain.CategoryWestern},
			Available:     true,
			Rating:        4.7,
			ReviewCount:   156,
			PrepTime:      5,
			Ingredients:   "Bánh ladyfinger, cà phê espresso, mascarpone, cacao",
		},
		{
			ID:            "9",
			Name:          "Cà Phê Sữa Đá",
			NameEn:        "Iced Vietnamese Coffee",
			Description:   "Cà phê phin truyền thống với sữa đặc, đá",
			DescriptionEn: "Traditional Vietnamese drip coffee with condensed milk and ice",
			Price:         30000,
			ImageURL:      "https://images.unsplash.com/photo-1517487881594-2787fef5ebf7?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryBeverage, domain.CategoryVietnamese},
			Available:     true,
			Rating:        4.8,
			ReviewCount:   267,
			PrepTime:      8,
			Ingredients:   "Cà phê phin, sữa đặc, đá",
		},
		{
			ID:            "10",
			Name:          "Trà Sữa Trân Châu",
			NameEn:        "Bubble Milk Tea",
			Description:   "Trà sữa đài loan với trân châu đen mềm dẻo",
			DescriptionEn: "Taiwanese bubble milk tea with chewy tapioca pearls",
			Price:         40000,
			ImageURL:      "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryBeverage},
			Available:     true,
			Rating:        4.6,
			ReviewCount:   198,
			PrepTime:      10,
			Ingredients:   "Trà, sữa, trân châu, đường, đá",
		},
		{
			ID:            "11",
			Name:          "Nước Ép Cam Tươi",
			NameEn:        "Fresh Orange Juice",
			Description:   "Nước cam vắt tươi 100% không đường",
			DescriptionEn: "100% fresh squeezed orange juice, no sugar added",
			Price:         35000,
			ImageURL:      "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryBeverage},
			Available:     true,
			Rating:        4.5,
			ReviewCount:   145,
			PrepTime:      5,
			Ingredients:   "Cam tươi",
		},
		{
			ID:            "12",
			Name:          "Cơm Chiên Dương Châu",
			NameEn:        "Yang Chow Fried Rice",
			Description:   "Cơm chiên với tôm, thịt, trứng và rau củ",
			DescriptionEn: "Fried rice with shrimp, meat, eggs and vegetables",
			Price:         70000,
			ImageURL:      "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=800",
			Categories:    []domain.MenuCategory{domain.CategoryMainCourse},
			Available:     true,
			Rating:        4.4,
			ReviewCount:   176,
			PrepTime:      15,
			Ingredients:   "Cơm, tôm, thịt, trứng, đậu hà lan, cà rốt",
		},
	}
}

// seedTables builds the 20-table floor plan. Every third table seats 8,
// every other remaining table 6, the rest 4. Table 1 starts occupied and
// table 2 reserved, matching the showroom data set.
func seedTables() []domain.Table {
	tables := make([]domain.Table, 20)
	for i := range tables {
		capacity := 4
		switch {
		case i%3 == 0:
			capacity = 8
		case i%2 == 0:
			capacity = 6
		}
		status := domain.TableEmpty
		if i == 0 {
			status = domain.TableOccupied
		} else if i == 1 {
			status = domain.TableReserved
		}
		tables[i] = domain.Table{Number: i + 1, Capacity: capacity, Status: status}
	}
	return tables
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Username: "server01", Name: "Nguyễn Văn A", Role: domain.RoleServer},
		{ID: "2", Username: "kitchen01", Name: "Trần Thị B", Role: domain.RoleKitchen},
		{ID: "3", Username: "manager01", Name: "Lê Văn C", Role: domain.RoleManager},
		{ID: "4", Username: "cashier01", Name: "Phạm Thị D", Role: domain.RoleCashier},
	}
}
