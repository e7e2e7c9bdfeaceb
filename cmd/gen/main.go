package main

import (
	"creatorhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SocialLinkModel{},
		model.ProductModel{},
		model.CouponModel{},
		model.PartnerModel{},
		model.AnalyticsLogModel{},
		model.UserSubscriptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
