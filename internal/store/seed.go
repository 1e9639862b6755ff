package store

import "plastic-world/internal/model"

// SeedCatalogue returns the shop's initial product list. The process
// starts from this catalogue on every boot; there is no durable product
// storage.
func SeedCatalogue() []model.Product {
	return []model.Product{
		{
			ID:             "1",
			Name:           "أكياس بلاستيكية صغيرة",
			Price:          15000,
			WholesalePrice: 12000,
			Quantity:       50,
			UnitType:       model.UnitBundle,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic1/400/300"),
		},
		{
			ID:             "2",
			Name:           "أطباق بلاستيكية كبيرة",
			Price:          25000,
			WholesalePrice: 20000,
			Quantity:       30,
			UnitType:       model.UnitSack,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic2/400/300"),
		},
		{
			ID:             "3",
			Name:           "أكواب بلاستيكية شفافة",
			Price:          18000,
			WholesalePrice: 15000,
			Quantity:       100,
			UnitType:       model.UnitDozen,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic3/400/300"),
		},
		{
			ID:             "4",
			Name:           "صناديق تخزين بلاستيك",
			Price:          35000,
			WholesalePrice: 28000,
			Quantity:       25,
			UnitType:       model.UnitPiece,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic4/400/300"),
		},
		{
			ID:             "5",
			Name:           "علب حفظ طعام متوسطة",
			Price:          12000,
			WholesalePrice: 9000,
			Quantity:       80,
			UnitType:       model.UnitSet,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic5/400/300"),
		},
		{
			ID:             "6",
			Name:           "شنط تسوق بلاستيك",
			Price:          8000,
			WholesalePrice: 6000,
			Quantity:       200,
			UnitType:       model.UnitCarton,
			Image:          model.RemoteImage("https://picsum.photos/seed/plastic6/400/300"),
		},
	}
}
