package main

import (
	"vms/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.VisitRecordModel{},
		model.AvailabilityWindowModel{},
		model.NotificationModel{},
		model.PushSubscriptionModel{},
		model.UserDeviceModel{},
		model.PasswordResetModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
