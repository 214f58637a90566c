package models

// All lists every table owned by the service, referenced tables first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Garden{},
		&CropType{},
		&Harvest{},
		&InventoryCategory{},
		&InventoryItem{},
		&InventoryTransaction{},
		&CareActivity{},
		&CareActivityDetail{},
		&Worker{},
		&LaborRecord{},
		&Customer{},
		&Order{},
		&OrderItem{},
	}
}
