// Файл: seeders/seeder.go
package seeders

import (
	"log"

	"github.com/sAlyon228/youz-api/internal/store"
	"github.com/sAlyon228/youz-api/pkg/constants"
	"github.com/sAlyon228/youz-api/pkg/utils"
)

// Реквизиты СуперАдмина по умолчанию. Пароль нужно сменить после первого входа.
const (
	AdminFullName = "Администратор"
	AdminPhone    = "+79991234567"
	AdminPassword = "admin123"
)

// Run наполняет пустые справочники стартовыми данными. Каждая проверка
// независима и идемпотентна: повторный запуск на непустой таблице ничего
// не добавляет.
func Run(db *store.Store) error {
	if err := seedSuperAdmin(db); err != nil {
		return err
	}
	seedDefaultPoint(db)
	seedDefaultShop(db)
	log.Println("✅ База данных инициализирована")
	return nil
}

func seedSuperAdmin(db *store.Store) error {
	if db.Count(store.TableUsers, store.Filter{}) > 0 {
		return nil
	}

	passwordHash, err := utils.HashPassword(AdminPassword)
	if err != nil {
		return err
	}

	db.Insert(store.TableUsers,
		[]string{"fullName", "phone", "passwordHash", "role", "pointId", "deskId", "isActive", "avatarUrl"},
		[]any{AdminFullName, AdminPhone, passwordHash, constants.RoleSuperAdmin, nil, nil, 1, nil},
	)
	log.Printf("✅ Создан СуперАдмин: %s / %s", AdminPhone, AdminPassword)
	return nil
}

func seedDefaultPoint(db *store.Store) {
	if db.Count(store.TablePoints, store.Filter{}) > 0 {
		return
	}

	db.Insert(store.TablePoints,
		[]string{"name", "address", "latitude", "longitude", "openTime", "closeTime", "workDays", "isActive"},
		[]any{"Главный офис", "ул. Примерная, д. 1", nil, nil,
			constants.DefaultOpenTime, constants.DefaultCloseTime,
			`["MONDAY","TUESDAY","WEDNESDAY","THURSDAY","FRIDAY"]`, 1},
	)
	log.Println("✅ Создана тестовая точка")
}

func seedDefaultShop(db *store.Store) {
	if db.Count(store.TableShops, store.Filter{}) > 0 {
		return
	}

	db.Insert(store.TableShops,
		[]string{"name", "address", "latitude", "longitude", "phone", "workingHours", "isActive"},
		[]any{"Магазин №1", "ул. Торговая, д. 5", nil, nil, "+79990001122", "09:00-21:00", 1},
	)
	log.Println("✅ Создан тестовый магазин")
}
