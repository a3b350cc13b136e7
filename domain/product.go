package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                     TEXT PRIMARY KEY,
//     name                   TEXT NOT NULL,
//     description            TEXT,
//     long_description       TEXT,
//     category               TEXT,
//     subcategory            TEXT,
//     price                  NUMERIC,
//     original_price         NUMERIC,
//     discount               INTEGER,
//     tags                   JSONB,
//     benefits               JSONB,
//     ingredients            JSONB,
//     rating                 NUMERIC,
//     review_count           INTEGER,
//     bestseller             BOOLEAN,
//     in_stock               BOOLEAN,
//     subscription_available BOOLEAN,
//     created_at             TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                    string                       `gorm:"primaryKey;type:text" json:"id"`
	Name                  string                       `gorm:"column:name;type:text" json:"name"`
	Description           string                       `gorm:"column:description;type:text" json:"description"`
	LongDescription       string                       `gorm:"column:long_description;type:text" json:"long_description"`
	Category              string                       `gorm:"column:category;type:text" json:"category"`
	Subcategory           string                       `gorm:"column:subcategory;type:text" json:"subcategory"`
	Price                 float64                      `gorm:"column:price;type:numeric" json:"price"`
	OriginalPrice         float64                      `gorm:"column:original_price;type:numeric" json:"original_price"`
	Discount              int                          `gorm:"column:discount" json:"discount"`
	Tags                  datatypes.JSONSlice[string]  `gorm:"column:tags;type:jsonb" json:"tags"`
	Benefits              datatypes.JSONSlice[string]  `gorm:"column:benefits;type:jsonb" json:"benefits"`
	Ingredients           datatypes.JSONSlice[string]  `gorm:"column:ingredients;type:jsonb" json:"ingredients"`
	Rating                float64                      `gorm:"column:rating;type:numeric" json:"rating"`
	ReviewCount           int                          `gorm:"column:review_count" json:"review_count"`
	Bestseller            bool                         `gorm:"column:bestseller;default:false" json:"bestseller"`
	InStock               bool                         `gorm:"column:in_stock;default:true" json:"in_stock"`
	SubscriptionAvailable bool                         `gorm:"column:subscription_available;default:false" json:"subscription_available"`
	CreatedAt             time.Time                    `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
