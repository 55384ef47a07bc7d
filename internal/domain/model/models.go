package model

// マイグレーション順（参照される側が先）
func AllModels() []interface{} {
	return []interface{}{
		&Product{},
		&Store{},
		&Person{},
		&Order{},
		&OrderDetails{},
	}
}
